package evreg

import "testing"

func TestRegister1(t *testing.T) {
	reg := &Register{}
	n := 0
	r1 := reg.Add(1, func(any) { n++ })
	r2 := reg.Add(1, func(any) { n += 10 })

	if c := reg.RunCallbacks(1, nil); c != 2 || n != 11 {
		t.Fatalf("c=%v n=%v", c, n)
	}

	r1.Unregister()
	r1.Unregister() // idempotent
	if reg.NCallbacks(1) != 1 {
		t.Fatal(reg.NCallbacks(1))
	}
	if r1.Registered() || !r2.Registered() {
		t.Fatal("registered state")
	}

	r2.Unregister()
	if reg.NCallbacks(1) != 0 {
		t.Fatal(reg.NCallbacks(1))
	}
	if c := reg.RunCallbacks(1, nil); c != 0 {
		t.Fatal(c)
	}
}

func TestRegister2(t *testing.T) {
	// callback removing a later callback during the run
	reg := &Register{}
	calls := []int{}
	var r2 *Regist
	reg.Add(1, func(any) {
		calls = append(calls, 1)
		r2.Unregister()
	})
	r2 = reg.Add(1, func(any) { calls = append(calls, 2) })

	if c := reg.RunCallbacks(1, nil); c != 1 {
		t.Fatal(c)
	}
	if len(calls) != 1 || calls[0] != 1 {
		t.Fatal(calls)
	}
}

func TestRegister3(t *testing.T) {
	// callback added during a run only sees the next event
	reg := &Register{}
	n := 0
	reg.Add(1, func(any) {
		if n == 0 {
			reg.Add(1, func(any) { n += 10 })
		}
		n++
	})
	reg.RunCallbacks(1, nil)
	if n != 1 {
		t.Fatal(n)
	}
	reg.RunCallbacks(1, nil)
	if n != 12 {
		t.Fatal(n)
	}
}

func TestUnregister(t *testing.T) {
	reg := &Register{}
	unr := &Unregister{}
	unr.Add(reg.Add(1, func(any) {}), reg.Add(2, func(any) {}))
	if unr.Len() != 2 {
		t.Fatal(unr.Len())
	}
	unr.UnregisterAll()
	if reg.NCallbacks(1)+reg.NCallbacks(2) != 0 {
		t.Fatal("callbacks left")
	}
	if unr.Len() != 0 {
		t.Fatal(unr.Len())
	}
}

func TestRegisterSameCallback(t *testing.T) {
	reg := &Register{}
	n := 0
	cb := &Callback{F: func(any) { n++ }}
	r1 := reg.AddCallback(1, cb)
	reg.AddCallback(1, cb)
	if c := reg.RunCallbacks(1, nil); c != 2 || n != 2 {
		t.Fatalf("c=%v n=%v", c, n)
	}

	r1.Unregister()
	if c := reg.RunCallbacks(1, nil); c != 1 || n != 3 {
		t.Fatalf("c=%v n=%v", c, n)
	}
}

func TestRegisterSameCallbackDuringRun(t *testing.T) {
	// unregistering one add of a callback mid-run keeps the other
	reg := &Register{}
	n := 0
	cb := &Callback{F: func(any) { n++ }}
	var r2 *Regist
	reg.Add(1, func(any) { r2.Unregister() })
	r2 = reg.AddCallback(1, cb)
	reg.AddCallback(1, cb)
	if c := reg.RunCallbacks(1, nil); c != 2 || n != 1 {
		t.Fatalf("c=%v n=%v", c, n)
	}
}
