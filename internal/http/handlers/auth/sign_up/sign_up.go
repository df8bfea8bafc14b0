package signup

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/validation"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/services"
	signup "github.com/Shouganaii/tdd-clean-go-api/internal/core/services/sign_up"
	"github.com/Shouganaii/tdd-clean-go-api/internal/http/handlers/response"
)

type Handler struct {
	emailValidator validation.EmailValidator
	service        services.Service[signup.Input, signup.Result]
}

func New(
	emailValidator validation.EmailValidator,
	service services.Service[signup.Input, signup.Result],
) *Handler {
	if emailValidator == nil {
		panic(e.NewNilArgumentError("emailValidator"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{emailValidator: emailValidator, service: service}
}

type Input struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// firstMissingParam checks the required parameters in a fixed order and
// reports the first absent or empty one.
func (i Input) firstMissingParam() (string, bool) {
	params := []struct {
		field string
		value string
	}{
		{"email", i.Email},
		{"name", i.Name},
		{"password", i.Password},
		{"passwordConfirmation", i.PasswordConfirmation},
	}
	for _, p := range params {
		if p.value == "" {
			return p.field, true
		}
	}
	return "", false
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if field, missing := input.firstMissingParam(); missing {
		response.RenderMissingParam(rw, field)
		return
	}
	if input.Password != input.PasswordConfirmation {
		response.RenderInvalidParam(rw, "passwordConfirmation")
		return
	}

	isValid, err := h.emailValidator.IsValid(input.Email)
	if err != nil {
		response.RenderServerError(rw)
		return
	}
	if !isValid {
		response.RenderInvalidParam(rw, "email")
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Name:     input.Name,
			Email:    c.Email(input.Email),
			Password: account.RawPassword(input.Password),
		},
	)
	if err != nil {
		response.RenderServerError(rw)
		return
	}

	res := response.Account{}
	res.FromDomainAccount(result.Account)
	response.Render(rw, res, http.StatusOK)
}
