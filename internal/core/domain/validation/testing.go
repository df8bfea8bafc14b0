package validation

import (
	"fmt"
	"sync"
)

type FakeEmailValidator struct {
	IsValidResult bool
	ReturnError   bool
	Checked       []string
	lock          sync.Mutex
}

func NewFakeEmailValidator() *FakeEmailValidator {
	return &FakeEmailValidator{IsValidResult: true}
}

func (v *FakeEmailValidator) IsValid(email string) (bool, error) {
	if v.ReturnError {
		return false, fmt.Errorf("could not validate email %s", email)
	}
	v.lock.Lock()
	defer v.lock.Unlock()
	v.Checked = append(v.Checked, email)
	return v.IsValidResult, nil
}

func (v *FakeEmailValidator) CheckedCount() int {
	return len(v.Checked)
}

func (v *FakeEmailValidator) LastChecked() string {
	l := len(v.Checked)
	if l == 0 {
		panic("Checked count is 0.")
	}
	return v.Checked[l-1]
}
