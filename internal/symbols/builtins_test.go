package symbols_test

import (
	"sync"
	"testing"

	"sable/internal/symbols"
)

func TestBuiltinsInitialisedOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*symbols.BuiltinTable, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = symbols.Builtins()
		}(i)
	}
	wg.Wait()
	for _, b := range got {
		if b != got[0] {
			t.Fatalf("Builtins returned different tables")
		}
	}

	b := symbols.Builtins()
	if !b.Has("Array") || b.Kind("Array") != symbols.BuiltinConstructor {
		t.Fatalf("Array must be a built-in constructor")
	}
	if b.Kind("parseInt") != symbols.BuiltinFunction || b.Kind("document") != symbols.BuiltinValue {
		t.Fatalf("unexpected kinds")
	}
	if b.Has("jQuery") {
		t.Fatalf("framework names are not ambient")
	}
	names := b.Names()
	if len(names) != b.Len() {
		t.Fatalf("Names/Len mismatch")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d", i)
		}
	}
}
