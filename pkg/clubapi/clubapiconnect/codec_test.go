package clubapiconnect

import (
	"testing"

	"github.com/mmynk/clubhouse/pkg/clubapi"
)

func TestJSONCodec(t *testing.T) {
	var c JSONCodec
	if c.Name() != "json" {
		t.Fatalf("Name() = %q, want json", c.Name())
	}

	data, err := c.Marshal(&clubapi.ApproveRequest{GroupID: "g1", MembershipID: "m1"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), `{"groupId":"g1","membershipId":"m1"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var empty clubapi.GetCurrentUserRequest
	if err := c.Unmarshal(nil, &empty); err != nil {
		t.Errorf("empty body should decode, got %v", err)
	}

	var req clubapi.CreateGroupRequest
	if err := c.Unmarshal([]byte(`{"maxMembers":"ten"}`), &req); err == nil {
		t.Error("expected a decode error for a mistyped field")
	}
}
