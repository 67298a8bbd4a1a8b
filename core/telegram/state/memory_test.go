package state

import "testing"

func TestMemoryManagerStateLifecycle(t *testing.T) {
	mgr := NewMemoryManager()
	const user = int64(42)

	if mgr.HasState(user) {
		t.Fatal("fresh manager must report no state")
	}
	if got := mgr.GetState(user); got != StateIdle {
		t.Fatalf("expected idle, got %q", got)
	}

	mgr.SetState(user, State("confirm_order"))
	if !mgr.InProgress(user) {
		t.Fatal("expected state to be in progress")
	}
	if got := mgr.GetState(user); got != State("confirm_order") {
		t.Fatalf("unexpected state %q", got)
	}

	mgr.ClearState(user)
	if mgr.HasState(user) {
		t.Fatal("ClearState must reset to idle")
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	mgr := NewMemoryManager()
	const user = int64(7)

	mgr.SetTemp(user, "product_id", "test_metal_001")
	mgr.SetTemp(user, "notify_user_id", int64(123456789))

	if v, ok := mgr.GetTemp(user, "product_id"); !ok || v.(string) != "test_metal_001" {
		t.Fatalf("temp string lost: %v %v", v, ok)
	}
	if v, ok := mgr.GetTempInt64(user, "notify_user_id"); !ok || v != 123456789 {
		t.Fatalf("temp int64 lost: %v %v", v, ok)
	}
	if _, ok := mgr.GetTempInt64(user, "product_id"); ok {
		t.Fatal("string value must not assert as int64")
	}

	mgr.ClearTemp(user, "product_id")
	if _, ok := mgr.GetTemp(user, "product_id"); ok {
		t.Fatal("ClearTemp must remove the key")
	}
}

func TestMemoryManagerClearRemovesSession(t *testing.T) {
	mgr := NewMemoryManager()
	const user = int64(9)

	mgr.SetState(user, State("status_code"))
	mgr.SetTemp(user, "tracking_code", "TEST123456")
	mgr.Clear(user)

	if mgr.InProgress(user) {
		t.Fatal("Clear must drop the whole session")
	}
	if _, ok := mgr.GetTemp(user, "tracking_code"); ok {
		t.Fatal("Clear must drop temp data")
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	mgr := NewMemoryManager()

	mgr.SetState(1, State("notify_code"))
	mgr.SetTemp(1, "tracking_code", "AAA")
	mgr.SetTemp(2, "tracking_code", "BBB")

	if mgr.InProgress(2) {
		t.Fatal("state of user 1 leaked to user 2")
	}
	if v, _ := mgr.GetTemp(2, "tracking_code"); v != "BBB" {
		t.Fatalf("unexpected temp for user 2: %v", v)
	}
}
