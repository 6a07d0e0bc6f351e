//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Station string `validate:"station"`
	Payment string `validate:"payment_method"`
	Time    string `validate:"slot_time"`
	Type    string `validate:"equipment_type"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	valid := sample{Station: "flight", Payment: "paypal", Time: "09:00", Type: "motion"}
	assert.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*sample)
		field  string
	}{
		{name: "unknown station", mutate: func(s *sample) { s.Station = "boat" }, field: "Station"},
		{name: "unknown payment", mutate: func(s *sample) { s.Payment = "cash" }, field: "Payment"},
		{name: "half hour slot", mutate: func(s *sample) { s.Time = "09:30" }, field: "Time"},
		{name: "hour out of range", mutate: func(s *sample) { s.Time = "25:00" }, field: "Time"},
		{name: "station is not a credit type", mutate: func(s *sample) { s.Type = "flight" }, field: "Type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := v.Struct(s)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}
