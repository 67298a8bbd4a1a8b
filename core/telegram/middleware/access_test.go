package middleware

import "testing"

func TestAccessOptionsAllowed(t *testing.T) {
	opts := AccessOptions{AdminIDs: []int64{10, 20}}

	if !opts.Allowed(10) || !opts.Allowed(20) {
		t.Fatal("listed ids must be allowed")
	}
	if opts.Allowed(30) {
		t.Fatal("unlisted id must be rejected")
	}

	empty := AccessOptions{}
	if empty.Allowed(10) {
		t.Fatal("empty allow-list must reject everyone")
	}
}
