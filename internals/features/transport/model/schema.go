package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{&VehicleModel{}, &RouteModel{}, &RouteStopModel{}, &VehicleMaintenanceModel{}},
		ForeignKeys: []database.ForeignKey{
			fk("vehicles", "vehicle_campus_id", "campuses", "campus_id", cascade),
			fk("vehicles", "vehicle_driver_id", "users", "user_id", setNull),
			fk("routes", "route_campus_id", "campuses", "campus_id", cascade),
			fk("routes", "route_vehicle_id", "vehicles", "vehicle_id", setNull),
			fk("route_stops", "route_stop_route_id", "routes", "route_id", cascade),
			fk("vehicle_maintenance", "vehicle_maintenance_vehicle_id", "vehicles", "vehicle_id", cascade),
			fk("vehicle_maintenance", "vehicle_maintenance_created_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("vehicles", "ck_vehicles_capacity", "vehicle_capacity > 0"),
			database.Check("route_stops", "ck_route_stops_order", "route_stop_order >= 1"),
			database.Check("vehicle_maintenance", "ck_vehicle_maintenance_cost", "vehicle_maintenance_cost >= 0"),
		},
	}
}
