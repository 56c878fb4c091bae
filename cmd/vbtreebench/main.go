// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Command vbtreebench drives insert/commit/upsert/search timings for a
// vbtree.Tree, reporting in the original reference driver's shape: human
// readable progress on stderr and, when parameters are given on the
// command line, one tab-separated summary row on stdout.
package main

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/thrylos-labs/vbtree"
	"github.com/thrylos-labs/vbtree/kzg"
)

// defaultSecret is a toy trusted setup secret, never meant to secure
// anything real.
const defaultSecret = "8927347823478352432985"

func main() {
	widthBits := 2
	keyRangeBits := 256
	initialBits := 13
	addedBits := 7
	searchBits := 0

	if len(os.Args) > 1 {
		widthBits = mustAtoi(os.Args[1])
		keyRangeBits = mustAtoi(os.Args[2])
		initialBits = mustAtoi(os.Args[3])
		addedBits = mustAtoi(os.Args[4])
		searchBits = mustAtoi(os.Args[5])
	}

	width := 1 << widthBits
	numInitial := 1 << initialBits
	numAdded := 0
	if addedBits != 0 {
		numAdded = 1 << addedBits
	}
	numSearch := 0
	if searchBits != 0 {
		numSearch = 1 << searchBits
	}

	secret, err := kzg.NewSecret(defaultSecret)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setup, err := kzg.NewSetup(width, secret)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	engine := kzg.NewEngine(setup)

	tr, err := vbtree.NewTree(width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	keyRange := new(big.Int).Lsh(big.NewInt(1), uint(keyRangeBits))
	seen := make(map[vbtree.Key]struct{}, numInitial+numAdded)

	start := time.Now()
	for i := 0; i < numInitial; i++ {
		k, v := randomKey(keyRange), randomKey(keyRange)
		if err := tr.InsertNode(k, vbtree.Val(v), true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		seen[k] = struct{}{}
	}
	timeInitial := time.Since(start)
	fmt.Fprintf(os.Stderr, "Inserted %d elements in %s\n", numInitial, timeInitial)

	start = time.Now()
	vbtree.AddNodeHash(tr.Root, engine)
	computeRoot := time.Since(start)
	fmt.Fprintf(os.Stderr, "Computed VB-tree root in %s\n", computeRoot)

	var timeToAdd, checkValidAfterAdd time.Duration
	haveAdd := numAdded > 0
	if haveAdd {
		start = time.Now()
		for i := 0; i < numAdded; i++ {
			k, v := randomKey(keyRange), randomKey(keyRange)
			if err := vbtree.UpsertVCNode(tr, engine, k, vbtree.Val(v)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			seen[k] = struct{}{}
		}
		timeToAdd = time.Since(start)
		fmt.Fprintf(os.Stderr, "Additionally inserted %d elements in %s\n", numAdded, timeToAdd)

		start = time.Now()
		if err := vbtree.CheckValidTree(tr.Root, engine); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		checkValidAfterAdd = time.Since(start)
		fmt.Fprintf(os.Stderr, "[Checked tree valid: %s]\n", checkValidAfterAdd)
	}

	var timeToSearch time.Duration
	haveSearch := numSearch > 0
	if haveSearch {
		keys := make([]vbtree.Key, 0, len(seen))
		for k := range seen {
			keys = append(keys, k)
		}
		mathrand.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		if numSearch > len(keys) {
			numSearch = len(keys)
		}

		start = time.Now()
		for _, k := range keys[:numSearch] {
			if _, _, found := tr.FindNode(k); !found {
				fmt.Fprintln(os.Stderr, "search miss for a key known to be present")
				os.Exit(1)
			}
		}
		timeToSearch = time.Since(start)
		fmt.Fprintf(os.Stderr, "Searched for %d elements in %s\n", numSearch, timeToSearch)
	}

	if len(os.Args) > 1 {
		fmt.Printf("%s\t%d\t%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			"VBTree", widthBits, width, keyRange.String(), numInitial, numAdded,
			durOrEmpty(timeInitial, true), durOrEmpty(computeRoot, true),
			durOrEmpty(timeToAdd, haveAdd), durOrEmpty(checkValidAfterAdd, haveAdd),
			countOrEmpty(numSearch, haveSearch), durOrEmpty(timeToSearch, haveSearch))
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid integer argument %q: %v\n", s, err)
		os.Exit(1)
	}
	return n
}

// randomKey draws a uniformly random key in [0, keyRange) and encodes it
// little-endian into a 32-byte vbtree.Key.
func randomKey(keyRange *big.Int) vbtree.Key {
	n, err := cryptorand.Int(cryptorand.Reader, keyRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var k vbtree.Key
	b := n.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	copy(k[:], b)
	return k
}

func durOrEmpty(d time.Duration, have bool) string {
	if !have {
		return ""
	}
	return fmt.Sprintf("%.6f", d.Seconds())
}

func countOrEmpty(n int, have bool) string {
	if !have {
		return ""
	}
	return strconv.Itoa(n)
}
