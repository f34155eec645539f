package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// MiniprotGFF is a two-alignment miniprot GFF3 excerpt used across tests.
const MiniprotGFF = "##gff-version 3\n" +
	"##PAF\tP1\t130\t0\t130\t+\tctg1\t5000\t10\t400\n" +
	"ctg1\tminiprot\tmRNA\t11\t400\t990\t+\t.\tID=MP000001;Rank=1;Identity=0.9950;Target=P1 1 130\n" +
	"ctg1\tminiprot\tCDS\t11\t100\t300\t+\t0\tParent=MP000001;Rank=1;Identity=1.0000;Target=P1 1 30\n" +
	"ctg1\tminiprot\tCDS\t201\t400\t690\t+\t0\tParent=MP000001;Rank=1;Identity=0.9900;Target=P1 31 130\n" +
	"ctg1\tminiprot\tstop_codon\t398\t400\t0\t+\t0\tParent=MP000001;Rank=1\n" +
	"##PAF\tP2\t50\t0\t50\t-\tctg2\t900\t99\t249\n" +
	"ctg2\tminiprot\tmRNA\t100\t249\t250\t-\t.\tID=MP000002;Rank=1;Identity=0.9000\n" +
	"ctg2\tminiprot\tCDS\t100\t249\t250\t-\t0\tParent=MP000002;Rank=1;Identity=0.9000\n"

// WriteMiniprotGFF writes MiniprotGFF into a temp directory and returns the path.
func WriteMiniprotGFF(t testing.TB) string {
	t.Helper()
	return WriteFile(t, filepath.Join(t.TempDir(), "miniprot.gff"), MiniprotGFF)
}
