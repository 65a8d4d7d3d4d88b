package controller

import (
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/transport/dto"
	"schooloffice_backend/internals/features/transport/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

const area = constants.AreaTransport

func VehicleResource() *crud.Resource[model.VehicleModel, dto.VehicleRequest] {
	return &crud.Resource[model.VehicleModel, dto.VehicleRequest]{
		Name:    "vehicle",
		Area:    area,
		OrderBy: "vehicle_number",
		Search:  []string{"vehicles.vehicle_number", "vehicles.vehicle_model"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "vehicle_campus_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "vehicle_type", Kind: crud.FilterEnum},
			{Param: "driver", Column: "vehicle_driver_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "vehicle_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{Field: "vehicle_number", Columns: []string{"vehicle_number"}, Message: "a vehicle with this number already exists"}},
		BeforeWrite: func(w crud.WriteContext, _, m *model.VehicleModel) error {
			if m.VehicleDriverID == nil {
				return nil
			}
			return helper.CheckUserRole(w.Tx, *m.VehicleDriverID, "vehicle_driver_id", constants.RoleDriver)
		},
	}
}

func RouteResource() *crud.Resource[model.RouteModel, dto.RouteRequest] {
	return &crud.Resource[model.RouteModel, dto.RouteRequest]{
		Name:    "route",
		Area:    area,
		OrderBy: "route_number",
		Search:  []string{"routes.route_name", "routes.route_number", "routes.route_start_location", "routes.route_end_location"},
		Filters: []crud.Filter{
			{Param: "campus", Column: "route_campus_id", Kind: crud.FilterUUID},
			{Param: "vehicle", Column: "route_vehicle_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "route_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{Field: "route_number", Columns: []string{"route_number"}, Message: "a route with this number already exists"}},
	}
}

func RouteStopResource() *crud.Resource[model.RouteStopModel, dto.RouteStopRequest] {
	return &crud.Resource[model.RouteStopModel, dto.RouteStopRequest]{
		Name:     "route stop",
		Area:     area,
		OrderBy:  "route_stop_route_id, route_stop_order",
		PageSize: 50,
		Search:   []string{"route_stops.route_stop_name"},
		Filters:  []crud.Filter{{Param: "route", Column: "route_stop_route_id", Kind: crud.FilterUUID}},
		Unique: []crud.Unique{{
			Field: "route_stop_order", Columns: []string{"route_stop_route_id", "route_stop_order"},
			Message: "this route already has a stop at this position",
		}},
	}
}

func MaintenanceResource() *crud.Resource[model.VehicleMaintenanceModel, dto.MaintenanceRequest] {
	return &crud.Resource[model.VehicleMaintenanceModel, dto.MaintenanceRequest]{
		Name:    "maintenance record",
		Area:    area,
		OrderBy: "vehicle_maintenance_date DESC",
		Search:  []string{"vehicle_maintenance.vehicle_maintenance_description", "vehicle_maintenance.vehicle_maintenance_service_center"},
		Filters: []crud.Filter{
			{Param: "vehicle", Column: "vehicle_maintenance_vehicle_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "vehicle_maintenance_type", Kind: crud.FilterEnum},
		},
		Keep: []string{"vehicle_maintenance_created_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.VehicleMaintenanceModel) error {
			if m.MaintenanceNextServiceDate != nil && dbtime.Before(*m.MaintenanceNextServiceDate, m.MaintenanceDate) {
				return apperr.Validation("vehicle_maintenance_next_service_date", "next service cannot be before the maintenance date")
			}
			if old == nil {
				m.MaintenanceCreatedBy = w.ActorPtr()
			}
			return nil
		},
	}
}
