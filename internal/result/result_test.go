package result

import "testing"

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want Status
	}{
		{"Success", Success("ok"), StatusSuccess},
		{"SuccessID", SuccessID("ok", 7), StatusSuccess},
		{"NotFound", NotFound("missing"), StatusNotFound},
		{"AlreadyExists", AlreadyExists("dup"), StatusAlreadyExists},
		{"PermissionDenied", PermissionDenied("no"), StatusPermissionDenied},
		{"InvalidInput", InvalidInput("bad"), StatusInvalidInput},
		{"NotLoggedIn", NotLoggedIn("login first"), StatusNotLoggedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.res.Status != tt.want {
				t.Errorf("Status = %v, want %v", tt.res.Status, tt.want)
			}
		})
	}
}

func TestOK(t *testing.T) {
	if !Success("ok").OK() {
		t.Error("Success result should be OK")
	}
	for _, res := range []Result{
		NotFound("x"), AlreadyExists("x"), PermissionDenied("x"),
		InvalidInput("x"), NotLoggedIn("x"),
	} {
		if res.OK() {
			t.Errorf("%v result should not be OK", res.Status)
		}
	}
}

func TestSuccessIDCarriesID(t *testing.T) {
	res := SuccessID("created", 42)
	if res.ID != 42 {
		t.Errorf("ID = %d, want 42", res.ID)
	}
	// Results without a minted id leave ID at zero — ids start at 1, so
	// zero is unambiguous.
	if got := Success("ok").ID; got != 0 {
		t.Errorf("ID = %d, want 0", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "success"},
		{StatusNotFound, "not_found"},
		{StatusAlreadyExists, "already_exists"},
		{StatusPermissionDenied, "permission_denied"},
		{StatusInvalidInput, "invalid_input"},
		{StatusNotLoggedIn, "not_logged_in"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
