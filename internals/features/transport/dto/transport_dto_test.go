package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/transport/model"
	helper "schooloffice_backend/internals/helpers"
)

func TestVehicleRequest_ToModel(t *testing.T) {
	m := VehicleRequest{VehicleNumber: " lhr-1234 ", VehicleModel: "Coaster", VehicleCapacity: 30, VehicleCampusID: uuid.New()}.ToModel()
	assert.Equal(t, "LHR-1234", m.VehicleNumber)
	assert.Equal(t, model.VehicleBus, m.VehicleType)
	assert.True(t, m.VehicleIsActive)
	assert.Nil(t, m.VehicleInsuranceExpiry)
}

func TestRouteStopRequest_Clock(t *testing.T) {
	m := RouteStopRequest{RouteStopRouteID: uuid.New(), RouteStopName: "Gate 2", RouteStopOrder: 1,
		RouteStopPickupTime: "07:15", RouteStopDropTime: "14:40"}.ToModel()
	assert.Equal(t, datatypes.NewTime(7, 15, 0, 0), m.RouteStopPickupTime)
	assert.Equal(t, datatypes.NewTime(14, 40, 0, 0), m.RouteStopDropTime)
}

func TestRouteStopRequest_Validation(t *testing.T) {
	lat := 123.0
	errs := helper.NewValidator().Struct(RouteStopRequest{RouteStopName: "x", RouteStopPickupTime: "7am", RouteStopDropTime: "14:40", RouteStopLatitude: &lat})
	assert.Contains(t, errs, "route_stop_route_id")
	assert.Contains(t, errs, "route_stop_order")
	assert.Contains(t, errs, "route_stop_pickup_time")
	assert.Contains(t, errs, "route_stop_latitude")
}
