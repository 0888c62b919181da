package warp

import "testing"

func BenchmarkSetRGBA8(b *testing.B) {
	pm := NewPixmap(256, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pm.SetRGBA8(128, 128, 10, 20, 30, 255)
	}
}

func BenchmarkSampleBilinear(b *testing.B) {
	pm := checkerboard(256, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sampleBilinear(pm, 127.3, 42.7)
	}
}

func BenchmarkRenderTwirl(b *testing.B) {
	e := NewEngine(WithWorkers(1))
	src := NewStaticSource(checkerboard(128, 128))
	req := Request{FilterID: "twirl", Scale: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := e.Render(src, req); err != nil {
			b.Fatal(err)
		}
	}
}
