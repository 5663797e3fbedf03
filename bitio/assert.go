package bitio

var (
	_ BitBuffer = (*WordBuffer[MSB])(nil)
	_ BitBuffer = (*WordBuffer[LSB])(nil)
	_ BitBuffer = (*BigBuffer[MSB])(nil)
	_ BitBuffer = (*BigBuffer[LSB])(nil)
	_ BitBuffer = (*ArrayBuffer[MSB])(nil)
	_ BitBuffer = (*ArrayBuffer[LSB])(nil)
)
