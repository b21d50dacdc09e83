package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// RecreateOutputDir wipes and recreates a batch output directory.
func RecreateOutputDir(dir string) {
	os.RemoveAll(dir)
	os.MkdirAll(dir, 0777)
}

// GatherAllTabPaths collects .txt and .tab files under path, up to maxNum
// (0 means no limit).
func GatherAllTabPaths(path string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".txt") || strings.HasSuffix(s, ".tab") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Ordered](a A, b A) A {
	if a < b {
		return a
	}
	return b
}

func Max[A constraints.Ordered](a A, b A) A {
	if a > b {
		return a
	}
	return b
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
