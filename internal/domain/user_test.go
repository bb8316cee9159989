package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"MEDICO", "ENFERMERA", "PACIENTE", "ADMINISTRADOR"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, Role(raw), role)
	}

	_, err := ParseRole("medico")
	assert.Error(t, err)

	_, err = ParseRole("SUPERUSER")
	assert.Error(t, err)
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{
			name: "DayBeforeBirthday",
			dob:  time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2024, time.June, 14, 23, 0, 0, 0, time.UTC),
			want: 33,
		},
		{
			name: "OnBirthday",
			dob:  time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: 34,
		},
		{
			name: "DayAfterBirthday",
			dob:  time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC),
			want: 34,
		},
		{
			name: "Newborn",
			dob:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "EndOfYearBirthday",
			dob:  time.Date(1950, time.December, 31, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 73,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateAge(tc.dob, tc.now))
		})
	}
}

func TestValidateProfile(t *testing.T) {
	t.Run("MatchingVariant", func(t *testing.T) {
		u := &User{Role: RoleDoctor, Profile: DoctorProfile{SpecialtyID: "s1", LicenseNumber: "L-100"}}
		assert.NoError(t, u.ValidateProfile())
	})

	t.Run("MismatchedVariant", func(t *testing.T) {
		u := &User{Role: RoleDoctor, Profile: NurseProfile{DepartmentID: "d1"}}
		assert.Error(t, u.ValidateProfile())
	})

	t.Run("MissingProfile", func(t *testing.T) {
		u := &User{Role: RolePatient}
		assert.Error(t, u.ValidateProfile())
	})

	t.Run("AdminCarriesNone", func(t *testing.T) {
		u := &User{Role: RoleAdmin}
		assert.NoError(t, u.ValidateProfile())
	})

	t.Run("AdminWithProfileRejected", func(t *testing.T) {
		u := &User{Role: RoleAdmin, Profile: PatientProfile{Gender: "F"}}
		assert.Error(t, u.ValidateProfile())
	})
}

func TestProfileCodec(t *testing.T) {
	t.Run("DoctorRoundTrip", func(t *testing.T) {
		raw, err := EncodeProfile(DoctorProfile{SpecialtyID: "s1", LicenseNumber: "L-100"})
		require.NoError(t, err)

		decoded, err := DecodeProfile(RoleDoctor, raw)
		require.NoError(t, err)
		assert.Equal(t, DoctorProfile{SpecialtyID: "s1", LicenseNumber: "L-100"}, decoded)
	})

	t.Run("PatientOptionalAddress", func(t *testing.T) {
		raw, err := EncodeProfile(PatientProfile{Gender: "M"})
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "address")

		decoded, err := DecodeProfile(RolePatient, raw)
		require.NoError(t, err)
		assert.Nil(t, decoded.(PatientProfile).Address)
	})

	t.Run("AdminEncodesToNil", func(t *testing.T) {
		raw, err := EncodeProfile(nil)
		require.NoError(t, err)
		assert.Nil(t, raw)

		decoded, err := DecodeProfile(RoleAdmin, nil)
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("MissingPayloadForProfiledRole", func(t *testing.T) {
		_, err := DecodeProfile(RoleNurse, nil)
		assert.Error(t, err)
	})
}
