package cqt

import "testing"

func BenchmarkNodeConsume(b *testing.B) {
	for _, resolution := range []int{64, 128, 256} {
		node, err := NewNode(resolution, 48000, 60)
		if err != nil {
			b.Fatal(err)
		}

		chunk := stereoTone(5050, 48000, 800)

		b.Run(itoa(resolution)+"bins", func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				node.Consume(chunk)
			}
		})
	}
}

func BenchmarkNodeProduce(b *testing.B) {
	node, err := NewNode(128, 48000, 60)
	if err != nil {
		b.Fatal(err)
	}

	node.Consume(stereoTone(5050, 48000, 48000))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = node.Produce()
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
