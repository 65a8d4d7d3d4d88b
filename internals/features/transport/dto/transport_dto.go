package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/transport/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type VehicleRequest struct {
	VehicleNumber          string     `json:"vehicle_number"                     validate:"notblank,max=50"`
	VehicleType            string     `json:"vehicle_type"                       validate:"omitempty,oneof=BUS VAN CAR"`
	VehicleModel           string     `json:"vehicle_model"                      validate:"notblank,max=100"`
	VehicleManufactureYear int        `json:"vehicle_manufacture_year"           validate:"gte=1950,lte=2100"`
	VehicleCapacity        int        `json:"vehicle_capacity"                   validate:"gte=1"`
	VehicleCampusID        uuid.UUID  `json:"vehicle_campus_id"                  validate:"required"`
	VehicleDriverID        *uuid.UUID `json:"vehicle_driver_id"`
	VehicleInsuranceNumber *string    `json:"vehicle_insurance_number"           validate:"omitempty,max=100"`
	VehicleInsuranceExpiry *string    `json:"vehicle_insurance_expiry"           validate:"omitempty,datetime=2006-01-02"`
	VehicleFitnessExpiry   *string    `json:"vehicle_fitness_certificate_expiry" validate:"omitempty,datetime=2006-01-02"`
	VehicleIsActive        *bool      `json:"vehicle_is_active"`
}

func (r VehicleRequest) ToModel() model.VehicleModel {
	m := model.VehicleModel{
		VehicleNumber:          helper.Upper(r.VehicleNumber),
		VehicleType:            model.VehicleBus,
		VehicleModelName:       strings.TrimSpace(r.VehicleModel),
		VehicleManufactureYear: r.VehicleManufactureYear,
		VehicleCapacity:        r.VehicleCapacity,
		VehicleCampusID:        r.VehicleCampusID,
		VehicleDriverID:        r.VehicleDriverID,
		VehicleInsuranceNumber: helper.TrimPtr(r.VehicleInsuranceNumber),
		VehicleInsuranceExpiry: dbtime.ParseDatePtr(r.VehicleInsuranceExpiry),
		VehicleFitnessExpiry:   dbtime.ParseDatePtr(r.VehicleFitnessExpiry),
		VehicleIsActive:        helper.ValueOr(r.VehicleIsActive, true),
	}
	if r.VehicleType != "" {
		m.VehicleType = r.VehicleType
	}
	return m
}

type RouteRequest struct {
	RouteName          string          `json:"route_name"           validate:"notblank,max=200"`
	RouteNumber        string          `json:"route_number"         validate:"notblank,max=50"`
	RouteCampusID      uuid.UUID       `json:"route_campus_id"      validate:"required"`
	RouteVehicleID     *uuid.UUID      `json:"route_vehicle_id"`
	RouteStartLocation string          `json:"route_start_location" validate:"notblank,max=200"`
	RouteEndLocation   string          `json:"route_end_location"   validate:"notblank,max=200"`
	RouteDistanceKm    *float64        `json:"route_distance_km"    validate:"omitempty,gte=0"`
	RouteMonthlyFee    decimal.Decimal `json:"route_monthly_fee"    validate:"gte=0"`
	RouteIsActive      *bool           `json:"route_is_active"`
}

func (r RouteRequest) ToModel() model.RouteModel {
	return model.RouteModel{
		RouteName:          strings.TrimSpace(r.RouteName),
		RouteNumber:        helper.Upper(r.RouteNumber),
		RouteCampusID:      r.RouteCampusID,
		RouteVehicleID:     r.RouteVehicleID,
		RouteStartLocation: strings.TrimSpace(r.RouteStartLocation),
		RouteEndLocation:   strings.TrimSpace(r.RouteEndLocation),
		RouteDistanceKm:    r.RouteDistanceKm,
		RouteMonthlyFee:    helper.Cents(r.RouteMonthlyFee),
		RouteIsActive:      helper.ValueOr(r.RouteIsActive, true),
	}
}

type RouteStopRequest struct {
	RouteStopRouteID    uuid.UUID `json:"route_stop_route_id"    validate:"required"`
	RouteStopName       string    `json:"route_stop_name"        validate:"notblank,max=200"`
	RouteStopOrder      int       `json:"route_stop_order"       validate:"gte=1"`
	RouteStopPickupTime string    `json:"route_stop_pickup_time" validate:"required,datetime=15:04"`
	RouteStopDropTime   string    `json:"route_stop_drop_time"   validate:"required,datetime=15:04"`
	RouteStopLatitude   *float64  `json:"route_stop_latitude"    validate:"omitempty,latitude"`
	RouteStopLongitude  *float64  `json:"route_stop_longitude"   validate:"omitempty,longitude"`
}

func (r RouteStopRequest) ToModel() model.RouteStopModel {
	return model.RouteStopModel{
		RouteStopRouteID:    r.RouteStopRouteID,
		RouteStopName:       strings.TrimSpace(r.RouteStopName),
		RouteStopOrder:      r.RouteStopOrder,
		RouteStopPickupTime: dbtime.ParseClock(r.RouteStopPickupTime),
		RouteStopDropTime:   dbtime.ParseClock(r.RouteStopDropTime),
		RouteStopLatitude:   r.RouteStopLatitude,
		RouteStopLongitude:  r.RouteStopLongitude,
	}
}

type MaintenanceRequest struct {
	VehicleID       uuid.UUID       `json:"vehicle_maintenance_vehicle_id"        validate:"required"`
	Type            string          `json:"vehicle_maintenance_type"              validate:"required,oneof=ROUTINE REPAIR ACCIDENT"`
	Date            string          `json:"vehicle_maintenance_date"              validate:"required,datetime=2006-01-02"`
	Description     string          `json:"vehicle_maintenance_description"       validate:"notblank"`
	Cost            decimal.Decimal `json:"vehicle_maintenance_cost"              validate:"gte=0"`
	ServiceCenter   *string         `json:"vehicle_maintenance_service_center"    validate:"omitempty,max=200"`
	NextServiceDate *string         `json:"vehicle_maintenance_next_service_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r MaintenanceRequest) ToModel() model.VehicleMaintenanceModel {
	return model.VehicleMaintenanceModel{
		MaintenanceVehicleID:       r.VehicleID,
		MaintenanceType:            r.Type,
		MaintenanceDate:            dbtime.ParseDate(r.Date),
		MaintenanceDescription:     strings.TrimSpace(r.Description),
		MaintenanceCost:            helper.Cents(r.Cost),
		MaintenanceServiceCenter:   helper.TrimPtr(r.ServiceCenter),
		MaintenanceNextServiceDate: dbtime.ParseDatePtr(r.NextServiceDate),
	}
}
