package validate_test

import (
	"errors"
	"testing"

	"github.com/betacoin/betacoin/business/sys/validate"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Check(t *testing.T) {
	type request struct {
		NetworkID string `json:"network_id" validate:"required"`
		Height    int32  `json:"height" validate:"gte=0"`
	}

	t.Log("Given the need to validate request models.")
	{
		t.Logf("\tTest 0:\tWhen handling a well-formed request.")
		{
			req := request{NetworkID: "org.betacoin.production", Height: 100}
			if err := validate.Check(req); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould pass validation: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould pass validation.", success)
		}

		t.Logf("\tTest 1:\tWhen handling a request with missing and invalid fields.")
		{
			req := request{Height: -1}
			err := validate.Check(req)
			if err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould fail validation.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould fail validation.", success)

			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tTest 1:\tShould get FieldErrors back: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get FieldErrors back.", success)

			fields := validate.GetFieldErrors(err).Fields()
			if _, exists := fields["network_id"]; !exists {
				t.Errorf("\t%s\tTest 1:\tShould report fields by their json names: %v", failed, fields)
			} else {
				t.Logf("\t%s\tTest 1:\tShould report fields by their json names.", success)
			}
			if _, exists := fields["height"]; !exists {
				t.Errorf("\t%s\tTest 1:\tShould report the out of range field: %v", failed, fields)
			} else {
				t.Logf("\t%s\tTest 1:\tShould report the out of range field.", success)
			}
		}

		t.Logf("\tTest 2:\tWhen handling an unrelated error value.")
		{
			err := errors.New("boom")
			if validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tTest 2:\tShould not treat plain errors as field errors.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould not treat plain errors as field errors.", success)
		}
	}
}
