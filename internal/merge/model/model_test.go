package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestColumnIndexes(t *testing.T) {
	ds := &Dataset{Columns: []string{"Name", "City", "Qty"}}

	idx, err := ds.ColumnIndexes([]string{"Qty", "Name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(idx, []int{2, 0}) {
		t.Errorf("indexes = %v, want [2 0]", idx)
	}

	if _, err := ds.ColumnIndexes([]string{"Name", "Missing"}); !errors.Is(err, ErrBadConfig) {
		t.Errorf("error = %v, want ErrBadConfig", err)
	}
}

func TestSimilarityEnabled(t *testing.T) {
	cases := []struct {
		name        string
		left, right []string
		want        bool
	}{
		{"both sides selected", []string{"a"}, []string{"b"}, true},
		{"left missing", nil, []string{"b"}, false},
		{"right missing", []string{"a"}, nil, false},
		{"both missing", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Params{LeftMatchCols: tc.left, RightMatchCols: tc.right}
			if got := p.SimilarityEnabled(); got != tc.want {
				t.Errorf("SimilarityEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(BadConfigf("x %d", 1), ErrBadConfig) {
		t.Error("BadConfigf must wrap ErrBadConfig")
	}
	if !errors.Is(BadDataf("y"), ErrBadData) {
		t.Error("BadDataf must wrap ErrBadData")
	}
	if errors.Is(BadDataf("y"), ErrBadConfig) {
		t.Error("kinds must not overlap")
	}
}
