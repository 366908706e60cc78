package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bytecast"
)

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
	buf := make([]byte, 1<<16)
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := 0; i < 10000; i++ {
		vals, err := bytecast.ToSlice[uint32](buf)
		if err != nil {
			log.Fatal(err)
		}
		_ = bytecast.Bytes(vals)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
