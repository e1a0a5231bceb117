package escrow

import (
	"os"
	"path/filepath"
	"testing"
)

const releaseABI = `[{"inputs":[{"internalType":"uint256","name":"buildingId","type":"uint256"}],"name":"releaseMilestoneFunds","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

func writeABIFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escrow.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write abi file: %v", err)
	}
	return path
}

func TestLoadABIBareArray(t *testing.T) {
	parsed, err := LoadABI(writeABIFile(t, releaseABI))
	if err != nil {
		t.Fatalf("load abi: %v", err)
	}
	if _, ok := parsed.Methods["releaseMilestoneFunds"]; !ok {
		t.Errorf("releaseMilestoneFunds not found in parsed ABI")
	}
}

func TestLoadABICompilerArtifact(t *testing.T) {
	parsed, err := LoadABI(writeABIFile(t, `{"contractName":"EscrowManager","abi":`+releaseABI+`}`))
	if err != nil {
		t.Fatalf("load wrapped abi: %v", err)
	}
	if _, ok := parsed.Methods["releaseMilestoneFunds"]; !ok {
		t.Errorf("releaseMilestoneFunds not found in parsed ABI")
	}
}

func TestLoadABIMissingFile(t *testing.T) {
	if _, err := LoadABI(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadABIInvalidJSON(t *testing.T) {
	if _, err := LoadABI(writeABIFile(t, "not json")); err == nil {
		t.Fatal("expected error for invalid json")
	}
}
