package libmonero

import "testing"

func TestEndToEndSeedToAddress(t *testing.T) {
	seed, err := GenerateSeed("en", "original")
	if err != nil {
		t.Fatal(err)
	}
	if len(seed) != 25 {
		t.Fatalf("got %d words, want 25", len(seed))
	}

	hexSeed, err := DeriveHexSeedFromMnemonic(seed)
	if err != nil {
		t.Fatal(err)
	}
	if len(hexSeed) != 64 {
		t.Fatalf("got %d hex chars, want 64", len(hexSeed))
	}

	privSpend, privView, err := DerivePrivKeys(hexSeed)
	if err != nil {
		t.Fatal(err)
	}

	viewCheck, err := DerivePrivViewFromSpend(privSpend)
	if err != nil {
		t.Fatal(err)
	}
	if viewCheck != privView {
		t.Fatalf("DerivePrivViewFromSpend(spend) = %s, want %s", viewCheck, privView)
	}

	pubSpend, err := DerivePubKey(privSpend)
	if err != nil {
		t.Fatal(err)
	}
	pubView, err := DerivePubKey(privView)
	if err != nil {
		t.Fatal(err)
	}

	addr, err := DeriveAddress(pubSpend, pubView, Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeAddress(addr)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.PublicSpendKey != pubSpend {
		t.Fatalf("decoded spend key = %s, want %s", decoded.PublicSpendKey, pubSpend)
	}
	if decoded.PublicViewKey != pubView {
		t.Fatalf("decoded view key = %s, want %s", decoded.PublicViewKey, pubView)
	}
	if decoded.Network != Mainnet {
		t.Fatalf("decoded network = %v, want Mainnet", decoded.Network)
	}
}

func TestMyMoneroSeedRoundTrip(t *testing.T) {
	seed, err := GenerateSeed("en", "mymonero")
	if err != nil {
		t.Fatal(err)
	}
	if len(seed) != 13 {
		t.Fatalf("got %d words, want 13", len(seed))
	}

	hexSeed, err := DeriveHexSeedFromMnemonic(seed)
	if err != nil {
		t.Fatal(err)
	}
	if len(hexSeed) != 32 {
		t.Fatalf("got %d hex chars, want 32", len(hexSeed))
	}

	if _, _, err := DerivePrivKeys(hexSeed); err != nil {
		t.Fatal(err)
	}
}
