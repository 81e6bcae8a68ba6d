package address

import "testing"

const (
	testSpend = "3bfe3a7d4c6a4ce8c4c5e5cdfba3c0c5ec4c2d0c1a9a8b7f6e5d4c3b2a1908f7"
	testView  = "9f8e7d6c5b4a39281716253443526170819283746556473829100f1e2d3c4b5a"
)

func TestDeriveAddressRoundTrip(t *testing.T) {
	addr, err := DeriveAddress(testSpend, testView, Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(addr)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Network != Mainnet {
		t.Fatalf("network = %v, want Mainnet", decoded.Network)
	}
	if decoded.PublicSpendKey != testSpend {
		t.Fatalf("spend key = %s, want %s", decoded.PublicSpendKey, testSpend)
	}
	if decoded.PublicViewKey != testView {
		t.Fatalf("view key = %s, want %s", decoded.PublicViewKey, testView)
	}
}

func TestDeriveAddressTestnetRoundTrip(t *testing.T) {
	addr, err := DeriveAddress(testSpend, testView, Testnet)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(addr)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Network != Testnet {
		t.Fatalf("network = %v, want Testnet", decoded.Network)
	}
}

func TestDeriveAddressDeterministic(t *testing.T) {
	a, err := DeriveAddress(testSpend, testView, Mainnet)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveAddress(testSpend, testView, Mainnet)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("DeriveAddress is not deterministic for identical input")
	}
}

func TestDeriveAddressInvalidHex(t *testing.T) {
	if _, err := DeriveAddress("not-hex", testView, Mainnet); err == nil {
		t.Fatal("expected error for non-hex spend key")
	}
}

func TestDeriveAddressWrongLength(t *testing.T) {
	if _, err := DeriveAddress(testSpend[:62], testView, Mainnet); err == nil {
		t.Fatal("expected error for a spend key shorter than 32 bytes")
	}
}

func TestDeriveAddressUnknownNetwork(t *testing.T) {
	if _, err := DeriveAddress(testSpend, testView, Network(99)); err == nil {
		t.Fatal("expected error for unknown network")
	}
}

func TestDecodeRejectsCorruptChecksum(t *testing.T) {
	addr, err := DeriveAddress(testSpend, testView, Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	corrupt := []byte(addr)
	last := corrupt[len(corrupt)-1]
	if last == '1' {
		corrupt[len(corrupt)-1] = '2'
	} else {
		corrupt[len(corrupt)-1] = '1'
	}

	if _, err := Decode(string(corrupt)); err == nil {
		t.Fatal("expected checksum mismatch error for corrupted address")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not a monero address"); err == nil {
		t.Fatal("expected error decoding garbage input")
	}
}

func TestBase58RoundTripArbitraryLengths(t *testing.T) {
	for n := 1; n <= 20; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*37 + n)
		}
		enc := base58Encode(data)
		dec, err := base58Decode(enc)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if len(dec) != len(data) {
			t.Fatalf("len %d: decoded length %d, want %d", n, len(dec), len(data))
		}
		for i := range data {
			if dec[i] != data[i] {
				t.Fatalf("len %d: byte %d = %x, want %x", n, i, dec[i], data[i])
			}
		}
	}
}
