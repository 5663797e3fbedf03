//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxelsplace/bitcode/utils"
)

func usage() {
	fmt.Println("Usage: bitcode <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  encode <code> <value> <storage> <endian> <width>   (encode a decimal value, print its bit string)")
	fmt.Println("  decode <code> <bits> <endian>                      (decode a '0'/'1' bit string, print the value)")
	fmt.Println("  sweep <output_dir>                                 (round-trip the built-in corpus, write a report)")
	fmt.Println("codes: gamma, delta, omega, fibonacci, zeta<K>, bl<S>   e.g. zeta3, bl4")
	fmt.Println("storage: word, big, array   endian: msb, lsb")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encode":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		width, err := strconv.Atoi(os.Args[6])
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunEncode(os.Args[2], os.Args[3], os.Args[4], os.Args[5], width); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "decode":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunDecode(os.Args[2], os.Args[3], os.Args[4]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "sweep":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunSweep(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
