package cryptonight

import "testing"

func TestCnSlowHashTestVector(t *testing.T) {
	got := CnSlowHash([]byte("This is a test"))
	want := "a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605"
	if got != want {
		t.Errorf("CnSlowHash(%q) = %s, want %s", "This is a test", got, want)
	}
}

func TestCnSlowHashEmptyInput(t *testing.T) {
	got := CnSlowHash([]byte(""))
	want := "eb14e8a833fac6fe9a43b57b336789c46ffe93f2868452240720607b14387e11"
	if got != want {
		t.Errorf("CnSlowHash(%q) = %s, want %s", "", got, want)
	}
}

// TestCnSlowHashHelloWorld covers the third reference vector spec.md
// names ("Hello, World!"), but unlike the other two it is skipped rather
// than asserted. The published CNS008 test vector sets this project has
// access to (the CNS008 document itself, the original CryptoNote
// reference implementation, and ekyu.moe/cryptonight's own README) only
// cite "" and "This is a test" verbatim; none of them give a byte-exact
// value for "Hello, World!" to copy. Hardcoding a guessed digest here
// would be worse than no test at all, since a wrong constant reads as a
// verified vector. Skipped pending a citation for the actual published
// value.
func TestCnSlowHashHelloWorld(t *testing.T) {
	t.Skip("no verifiable published CNS008 vector for \"Hello, World!\" found; see DESIGN.md")
}

func TestSumLength(t *testing.T) {
	sum := Sum([]byte("abc"))
	if len(sum) != 32 {
		t.Fatalf("Sum returned %d bytes, want 32", len(sum))
	}
}

func TestSumDeterministic(t *testing.T) {
	data := []byte("deterministic input")
	a := Sum(data)
	b := Sum(data)
	if string(a) != string(b) {
		t.Fatal("Sum is not deterministic for identical input")
	}
}

func TestSumDiffersOnInputChange(t *testing.T) {
	a := Sum([]byte("input one"))
	b := Sum([]byte("input two"))
	if string(a) == string(b) {
		t.Fatal("Sum produced identical digests for different inputs")
	}
}

func TestCacheReuse(t *testing.T) {
	var c Cache
	first := c.Sum([]byte("first call"))
	second := c.Sum([]byte("second call"))
	if string(first) == string(second) {
		t.Fatal("reusing a Cache produced identical digests for different inputs")
	}
}
