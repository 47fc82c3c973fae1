package vatinlib_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rezonia/vatin-checker/pkg/vatinlib"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		vatin string
		want  bool
	}{
		{"ATU13585627", true},
		{"ATU13585626", false},
		{"atU13585627", true},
		{"DE136695976", true},
		{"DE136695978", false},
		{"XX123", true},
		{"AT", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.vatin, func(t *testing.T) {
			assert.Equal(t, tt.want, vatinlib.IsValid(tt.vatin))
		})
	}
}

func TestHasValidator(t *testing.T) {
	assert.True(t, vatinlib.HasValidator("ATU13585627"))
	assert.True(t, vatinlib.HasValidator("GR123"))
	assert.False(t, vatinlib.HasValidator("AT"))
	assert.False(t, vatinlib.HasValidator("XX123"))
}

func TestPerCountryChecks(t *testing.T) {
	assert.True(t, vatinlib.IsValidAT("U13585627"))
	assert.False(t, vatinlib.IsValidAT("U13585626"))
	assert.True(t, vatinlib.IsValidDE("136695976"))
	assert.Equal(t, vatinlib.IsValidEL("094259216"), vatinlib.IsValidGR("094259216"))
}

func TestCountries(t *testing.T) {
	countries := vatinlib.Countries()
	assert.Len(t, countries, 29)
	assert.Contains(t, countries, "EL")
	assert.Contains(t, countries, "GR")
}

func TestValidate(t *testing.T) {
	result := vatinlib.Validate("ATU13585627")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Message())

	result = vatinlib.Validate("ATU13585626")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message(), "Austria")
	require.NotNil(t, result.Structure)
	assert.Equal(t, "AT", result.Structure.CountryCode())

	err := result.Err("vatin")
	var verr *vatinlib.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "vatin", verr.Field)
}

func TestNewValidator(t *testing.T) {
	v := vatinlib.NewValidator(language.German)
	result := v.Validate("DE136695978")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message(), "Deutschland")
}

func TestFindStructure(t *testing.T) {
	s, ok := vatinlib.FindStructure("CHE116281710MWST")
	require.True(t, ok)
	assert.Equal(t, "CH", s.Country())

	_, ok = vatinlib.FindStructure("CHE116281710")
	assert.False(t, ok)

	s, ok = vatinlib.FindStructureByPrefix("ie")
	require.True(t, ok)
	assert.Equal(t, "IE", s.Country())

	_, ok = vatinlib.FindStructureByPrefix("GR")
	assert.False(t, ok)

	assert.Len(t, vatinlib.Structures(), 30)
}

func TestRegisterValidation(t *testing.T) {
	type customer struct {
		VATIN string `validate:"required,vatin"`
		Rate  string `validate:"vatitem"`
	}

	validate := validator.New()
	require.NoError(t, vatinlib.RegisterValidation(validate))

	assert.NoError(t, validate.Struct(customer{VATIN: "ATU13585627", Rate: "de-standard"}))
	assert.Error(t, validate.Struct(customer{VATIN: "ATU13585626"}))
	assert.Error(t, validate.Struct(customer{VATIN: "ATU13585627", Rate: "de-unknown"}))
	assert.Error(t, validate.Struct(customer{}))
}

func TestIsValidRateItem(t *testing.T) {
	assert.True(t, vatinlib.IsValidRateItem("fr-super-reduced"))
	assert.False(t, vatinlib.IsValidRateItem("fr"))
}
