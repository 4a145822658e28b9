package infra

import "testing"

func TestSplitMarker(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantMarker string
		wantErr    bool
	}{
		{
			name:       "valid marker",
			query:      "--sql 3f0e8a52-8c1d-4b57-9a0e-5d2c71f4b6a9\nselect 1;",
			wantMarker: "3f0e8a52-8c1d-4b57-9a0e-5d2c71f4b6a9",
		},
		{
			name:       "leading whitespace",
			query:      "\n  --sql 3f0e8a52-8c1d-4b57-9a0e-5d2c71f4b6a9\nselect 1;\n",
			wantMarker: "3f0e8a52-8c1d-4b57-9a0e-5d2c71f4b6a9",
		},
		{name: "missing marker", query: "select 1;", wantErr: true},
		{name: "uppercase uuid", query: "--sql 3F0E8A52-8C1D-4B57-9A0E-5D2C71F4B6A9\nselect 1;", wantErr: true},
		{name: "marker only", query: "--sql 3f0e8a52-8c1d-4b57-9a0e-5d2c71f4b6a9", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			marker, stmt, err := SplitMarker(tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got marker %q", marker)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if marker != tc.wantMarker {
				t.Fatalf("marker = %q, want %q", marker, tc.wantMarker)
			}
			if stmt == "" {
				t.Fatal("statement is empty")
			}
		})
	}
}
