//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/bitio"
	"github.com/voxelsplace/bitcode/utils"
)

func encodeBits(this js.Value, args []js.Value) any {
	if len(args) < 5 {
		return js.ValueOf("missing arguments: code, value, storage, endian, width")
	}
	code, err := utils.ParseCode(args[0].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	value, err := strconv.ParseUint(args[1].String(), 10, 64)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	storage, err := utils.ParseStorage(args[2].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	endian, err := utils.ParseEndian(args[3].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	width := args[4].Int()
	if width <= 0 || width > 64 {
		return js.ValueOf("width out of range [1,64]")
	}
	spec := api.StorageSpec{Kind: storage, Endian: endian, Width: uint8(width)}
	buf, bits := api.Encode[uint64](spec, code, value)
	if bits == 0 {
		return js.ValueOf("value is not encodable under this code")
	}
	return js.ValueOf(api.Render(buf))
}

func decodeBits(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.ValueOf("missing arguments: code, bits, endian")
	}
	code, err := utils.ParseCode(args[0].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	bitsStr := args[1].String()
	endian, err := utils.ParseEndian(args[2].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}

	var value, consumed uint64
	if endian == api.LSB {
		src := api.ParseBits[bitio.LSB](bitsStr)
		value, consumed = api.Decode[uint64](code, src, 0)
	} else {
		src := api.ParseBits[bitio.MSB](bitsStr)
		value, consumed = api.Decode[uint64](code, src, 0)
	}
	if consumed == 0 {
		return js.ValueOf("could not decode a codeword from the given bit string")
	}
	result := js.Global().Get("Object").New()
	result.Set("value", js.ValueOf(float64(value)))
	result.Set("bitsConsumed", js.ValueOf(float64(consumed)))
	return result
}

func main() {
	js.Global().Set("encodeBits", js.FuncOf(encodeBits))
	js.Global().Set("decodeBits", js.FuncOf(decodeBits))
	select {}
}
