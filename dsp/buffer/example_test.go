package buffer_test

import (
	"fmt"

	"github.com/caffeinepub/thunderlab/dsp/buffer"
)

func ExampleAudio_Interleave() {
	a, err := buffer.FromChannels(44100, []float64{0.1, 0.3}, []float64{0.2, 0.4})
	if err != nil {
		panic(err)
	}

	fmt.Println(a.NumChannels(), a.Len())
	fmt.Println(a.Interleave())

	// Output:
	// 2 2
	// [0.1 0.2 0.3 0.4]
}
