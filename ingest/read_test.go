// SPDX-License-Identifier: MIT

package ingest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biogeo/ingest"
)

const pbdbSample = "\uFEFFoccurrence_no,accepted_name,formation,lng\n" +
	"1,Tyrannosaurus rex,Hell Creek,-104.1\n" +
	"2,Triceratops,HELL CREEK,-104.2\n" +
	"3,Triceratops,NA,-104.2\n" +
	"4,Edmontosaurus,\"Lance, upper\",-104.5\n" +
	"5,Edmontosaurus,Lance,-104.5\n"

func TestReadTable(t *testing.T) {
	raw, err := ingest.ReadTable(context.Background(), strings.NewReader(pbdbSample), ingest.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, raw, 5)

	assert.Equal(t, ingest.RawRecord{Taxon: "Tyrannosaurus rex", Locality: "Hell Creek", Line: 2}, raw[0])
	assert.Equal(t, "", raw[2].Locality, "NA is read as missing")
	assert.Equal(t, "Lance, upper", raw[3].Locality)
}

func TestReadTable_Errors(t *testing.T) {
	ctx := context.Background()
	cfg := ingest.DefaultConfig()

	tests := map[string]string{
		"empty":           "",
		"missing column":  "accepted_name,lng\nA,1\n",
		"ragged row":      "accepted_name,formation\nA,X\nB\n",
		"not tabular":     "<html><body>\"oops</body></html>\n",
		"missing taxon":   "formation\nX\n",
		"bare quote cell": "accepted_name,formation\nA,X\"Y\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.ReadTable(ctx, strings.NewReader(doc), cfg)
			require.ErrorIs(t, err, ingest.ErrIngestion)
		})
	}

	bad := cfg
	bad.Delimiter = ""
	_, err := ingest.ReadTable(ctx, strings.NewReader(pbdbSample), bad)
	require.ErrorIs(t, err, ingest.ErrIngestion)
	require.ErrorIs(t, err, ingest.ErrInvalidConfig)
}

func TestReadTable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ingest.ReadTable(ctx, strings.NewReader(pbdbSample), ingest.DefaultConfig())
	require.ErrorIs(t, err, ingest.ErrIngestion)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadTable_TSVWithComments(t *testing.T) {
	cfg := ingest.DefaultConfig()
	cfg.Delimiter = "\t"
	cfg.Comment = "#"
	doc := "# exported occurrences\naccepted_name\tformation\nA\tX\n"

	raw, err := ingest.ReadTable(context.Background(), strings.NewReader(doc), cfg)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "X", raw[0].Locality)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occ.csv")
	require.NoError(t, os.WriteFile(path, []byte(pbdbSample), 0o600))

	raw, err := ingest.Load(context.Background(), path, ingest.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, raw, 5)

	_, err = ingest.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), ingest.DefaultConfig())
	require.ErrorIs(t, err, ingest.ErrIngestion)

	_, err = ingest.Load(context.Background(), "", ingest.DefaultConfig())
	require.ErrorIs(t, err, ingest.ErrIngestion)
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/occs.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(pbdbSample))
	}))
	defer srv.Close()

	recs, rep, err := ingest.Ingest(context.Background(), srv.URL+"/occs.csv", ingest.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []ingest.Record{
		{Taxon: "Tyrannosaurus rex", Locality: "Hell Creek"},
		{Taxon: "Triceratops", Locality: "Hell Creek"},
		{Taxon: "Edmontosaurus", Locality: "Lance"},
	}, recs)
	assert.Equal(t, 5, rep.Total)
	assert.Equal(t, 1, rep.DroppedEmptyLocality)
	assert.Equal(t, 1, rep.DroppedAmbiguous)

	_, _, err = ingest.Ingest(context.Background(), srv.URL+"/missing.csv", ingest.DefaultConfig())
	require.ErrorIs(t, err, ingest.ErrIngestion)
}
