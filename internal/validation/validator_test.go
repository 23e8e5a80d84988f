package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type newCustomer struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required,max=5"`
}

func TestEnglishValidator(t *testing.T) {
	v, err := English()
	require.NoError(t, err, "failed to build validator")

	t.Log("valid payload must pass")
	{
		require.NoError(t, v.Validate(&newCustomer{FirstName: "Ann", LastName: "Lee"}))
	}

	t.Log("invalid payload must produce payload error with translated messages")
	{
		err := v.Validate(&newCustomer{LastName: "Longname"})
		require.IsType(t, &PayloadError{}, err, "error must be payload error")

		pldErr := err.(*PayloadError)
		require.Equal(t, []string{
			"firstName is a required field",
			"lastName must be a maximum of 5 characters in length",
		}, pldErr.Messages())
		require.Equal(t, 400, pldErr.Status())

		encoded, err := json.Marshal(pldErr)
		require.NoError(t, err)
		require.JSONEq(t, `{"errors":[
			{"field":"firstName","message":"firstName is a required field"},
			{"field":"lastName","message":"lastName must be a maximum of 5 characters in length"}
		]}`, string(encoded))
	}
}
