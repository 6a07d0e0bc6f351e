package validation

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the booking binding tags to v.
func Register(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"station":        isStation,
		"payment_method": isPaymentMethod,
		"slot_time":      isSlotTime,
		"equipment_type": isEquipmentType,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGin installs the tags on gin's default binding engine.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func isStation(fl validator.FieldLevel) bool {
	return equipment.Station(fl.Field().String()).IsValid()
}

func isEquipmentType(fl validator.FieldLevel) bool {
	return equipment.Type(fl.Field().String()).IsValid()
}

func isPaymentMethod(fl validator.FieldLevel) bool {
	_, err := booking.ParsePaymentMethod(fl.Field().String(), "")
	return err == nil
}

func isSlotTime(fl validator.FieldLevel) bool {
	_, err := venue.ParseSlotTime(fl.Field().String())
	return err == nil
}
