// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses the comma-separated lists accepted by command flags,
// such as "--tamanhos P,M,G".
package query

import (
	"strings"
)

// StringSlice splits a comma-separated value into trimmed, non-empty items.
// An empty value yields nil.
func StringSlice(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
