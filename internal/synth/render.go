package synth

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// Render 将有限长度的流渲染为 16 位有符号小端立体声 PCM
//
// 结果可直接交给 audio.Context.NewPlayerFromBytes。
// 流必须会自行结束（例如经过 beep.Take），否则 Render 不会返回。
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*len(buf))

	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}
