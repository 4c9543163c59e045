package provisioning

import "fmt"

// Reason classifies provisioning failures.
type Reason string

const (
	// ReasonAlreadyExists means the provider rejected a create as a duplicate.
	ReasonAlreadyExists Reason = "already_exists"
	ReasonListFailed    Reason = "list_failed"
	ReasonCreateFailed  Reason = "create_failed"
	// ReasonNotVisible means a duplicate was reported but no processor with
	// the display name could be listed afterwards.
	ReasonNotVisible Reason = "not_visible"
)

// ProvisionError is returned by Manager operations.
type ProvisionError struct {
	Reason      Reason
	DisplayName string
	Err         error
}

func (e *ProvisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provision %q: %s: %v", e.DisplayName, e.Reason, e.Err)
	}
	return fmt.Sprintf("provision %q: %s", e.DisplayName, e.Reason)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}
