package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/hirthwork/substring"
)

// Allocation harness: slicing, comparing and scanning views should not
// allocate; anything showing up in mem.prof besides the owned copies is
// a regression.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	doc := "the quick brown fox jumps over the lazy dog"
	v := substring.FromString[substring.ByteTraits, substring.Relaxed](doc)
	needle := substring.FromString[substring.ByteTraits, substring.Relaxed]("fox")
	for i := 0; i < 10000; i++ {
		sub, _ := v.Substr(16, 3)
		if !sub.Equal(needle) {
			log.Fatal("sub-view diverged from needle")
		}
		cursor := v
		for !cursor.Empty() {
			cursor.PopFront()
		}
		_ = sub.ToSlice() // the one deliberate allocation per pass
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
