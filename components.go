package main

import "fmt"

// Filter holds the categorical tags a histogram must carry to be selected.
type Filter struct {
	Isp          string
	PhotonCuts   string
	CentralHiggs string
	Nsubjets     string
	Var1         string
}

var DefaultFilter = Filter{
	Isp:          "all",
	PhotonCuts:   "all",
	CentralHiggs: "all",
	Nsubjets:     "all",
	Var1:         "Njets_excl",
}

func (f Filter) Args() []any {
	return []any{f.Isp, f.PhotonCuts, f.CentralHiggs, f.Nsubjets, f.Var1}
}

// Row is one histogram joined with its axes record.
type Row struct {
	Type  string
	Jet   string
	Var1  string
	Var2  string
	Edges int64
	Bins  string
}

func (r Row) String() string {
	return fmt.Sprintf("(%q, %q, %q, %q, %v, %q)", r.Type, r.Jet, r.Var1, r.Var2, r.Edges, r.Bins)
}
