package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	VehicleBus = "BUS"
	VehicleVan = "VAN"
	VehicleCar = "CAR"
)

type VehicleModel struct {
	VehicleID              uuid.UUID       `gorm:"column:vehicle_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vehicle_id"`
	VehicleNumber          string          `gorm:"column:vehicle_number;type:varchar(50);not null;uniqueIndex:uq_vehicles_number" json:"vehicle_number"`
	VehicleType            string          `gorm:"column:vehicle_type;type:varchar(10);not null;default:'BUS'" json:"vehicle_type"`
	VehicleModelName       string          `gorm:"column:vehicle_model;type:varchar(100);not null" json:"vehicle_model"`
	VehicleManufactureYear int             `gorm:"column:vehicle_manufacture_year;not null" json:"vehicle_manufacture_year"`
	VehicleCapacity        int             `gorm:"column:vehicle_capacity;not null" json:"vehicle_capacity"`
	VehicleCampusID        uuid.UUID       `gorm:"column:vehicle_campus_id;type:uuid;not null;index" json:"vehicle_campus_id"`
	VehicleDriverID        *uuid.UUID      `gorm:"column:vehicle_driver_id;type:uuid;index" json:"vehicle_driver_id,omitempty"`
	VehicleInsuranceNumber *string         `gorm:"column:vehicle_insurance_number;type:varchar(100)" json:"vehicle_insurance_number,omitempty"`
	VehicleInsuranceExpiry *datatypes.Date `gorm:"column:vehicle_insurance_expiry;type:date" json:"vehicle_insurance_expiry,omitempty"`
	VehicleFitnessExpiry   *datatypes.Date `gorm:"column:vehicle_fitness_certificate_expiry;type:date" json:"vehicle_fitness_certificate_expiry,omitempty"`
	VehicleIsActive        bool            `gorm:"column:vehicle_is_active;not null;default:true" json:"vehicle_is_active"`

	VehicleCreatedAt time.Time `gorm:"column:vehicle_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"vehicle_created_at"`
	VehicleUpdatedAt time.Time `gorm:"column:vehicle_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"vehicle_updated_at"`
}

func (VehicleModel) TableName() string { return "vehicles" }

/* =========================================================
   ROUTES & STOPS
========================================================= */

type RouteModel struct {
	RouteID            uuid.UUID       `gorm:"column:route_id;type:uuid;default:gen_random_uuid();primaryKey" json:"route_id"`
	RouteName          string          `gorm:"column:route_name;type:varchar(200);not null" json:"route_name"`
	RouteNumber        string          `gorm:"column:route_number;type:varchar(50);not null;uniqueIndex:uq_routes_number" json:"route_number"`
	RouteCampusID      uuid.UUID       `gorm:"column:route_campus_id;type:uuid;not null;index" json:"route_campus_id"`
	RouteVehicleID     *uuid.UUID      `gorm:"column:route_vehicle_id;type:uuid;index" json:"route_vehicle_id,omitempty"`
	RouteStartLocation string          `gorm:"column:route_start_location;type:varchar(200);not null" json:"route_start_location"`
	RouteEndLocation   string          `gorm:"column:route_end_location;type:varchar(200);not null" json:"route_end_location"`
	RouteDistanceKm    *float64        `gorm:"column:route_distance_km;type:numeric(6,2)" json:"route_distance_km,omitempty"`
	RouteMonthlyFee    decimal.Decimal `gorm:"column:route_monthly_fee;type:numeric(10,2);not null" json:"route_monthly_fee"`
	RouteIsActive      bool            `gorm:"column:route_is_active;not null;default:true" json:"route_is_active"`

	RouteCreatedAt time.Time `gorm:"column:route_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"route_created_at"`
	RouteUpdatedAt time.Time `gorm:"column:route_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"route_updated_at"`
}

func (RouteModel) TableName() string { return "routes" }

type RouteStopModel struct {
	RouteStopID         uuid.UUID      `gorm:"column:route_stop_id;type:uuid;default:gen_random_uuid();primaryKey" json:"route_stop_id"`
	RouteStopRouteID    uuid.UUID      `gorm:"column:route_stop_route_id;type:uuid;not null;uniqueIndex:uq_route_stops_order" json:"route_stop_route_id"`
	RouteStopName       string         `gorm:"column:route_stop_name;type:varchar(200);not null" json:"route_stop_name"`
	RouteStopOrder      int            `gorm:"column:route_stop_order;not null;uniqueIndex:uq_route_stops_order" json:"route_stop_order"`
	RouteStopPickupTime datatypes.Time `gorm:"column:route_stop_pickup_time;type:time;not null" json:"route_stop_pickup_time"`
	RouteStopDropTime   datatypes.Time `gorm:"column:route_stop_drop_time;type:time;not null" json:"route_stop_drop_time"`
	RouteStopLatitude   *float64       `gorm:"column:route_stop_latitude;type:numeric(9,6)" json:"route_stop_latitude,omitempty"`
	RouteStopLongitude  *float64       `gorm:"column:route_stop_longitude;type:numeric(9,6)" json:"route_stop_longitude,omitempty"`
}

func (RouteStopModel) TableName() string { return "route_stops" }

/* =========================================================
   MAINTENANCE
========================================================= */

type VehicleMaintenanceModel struct {
	MaintenanceID              uuid.UUID       `gorm:"column:vehicle_maintenance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vehicle_maintenance_id"`
	MaintenanceVehicleID       uuid.UUID       `gorm:"column:vehicle_maintenance_vehicle_id;type:uuid;not null;index" json:"vehicle_maintenance_vehicle_id"`
	MaintenanceType            string          `gorm:"column:vehicle_maintenance_type;type:varchar(20);not null" json:"vehicle_maintenance_type"`
	MaintenanceDate            datatypes.Date  `gorm:"column:vehicle_maintenance_date;type:date;not null" json:"vehicle_maintenance_date"`
	MaintenanceDescription     string          `gorm:"column:vehicle_maintenance_description;type:text;not null" json:"vehicle_maintenance_description"`
	MaintenanceCost            decimal.Decimal `gorm:"column:vehicle_maintenance_cost;type:numeric(10,2);not null" json:"vehicle_maintenance_cost"`
	MaintenanceServiceCenter   *string         `gorm:"column:vehicle_maintenance_service_center;type:varchar(200)" json:"vehicle_maintenance_service_center,omitempty"`
	MaintenanceNextServiceDate *datatypes.Date `gorm:"column:vehicle_maintenance_next_service_date;type:date" json:"vehicle_maintenance_next_service_date,omitempty"`
	MaintenanceCreatedBy       *uuid.UUID      `gorm:"column:vehicle_maintenance_created_by;type:uuid" json:"vehicle_maintenance_created_by,omitempty"`

	MaintenanceCreatedAt time.Time `gorm:"column:vehicle_maintenance_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"vehicle_maintenance_created_at"`
	MaintenanceUpdatedAt time.Time `gorm:"column:vehicle_maintenance_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"vehicle_maintenance_updated_at"`
}

func (VehicleMaintenanceModel) TableName() string { return "vehicle_maintenance" }
