// Command warpdemo applies a distortion filter to an image file.
//
// Examples:
//
//	warpdemo -list
//	warpdemo -in photo.png -filter twirl -param angle=240 -out twirled.png
//	warpdemo -in photo.jpg -filter mobius -preset mobius.json -edge mirror
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	"github.com/gogpu/warp"
)

type paramFlags []string

func (p *paramFlags) String() string { return strings.Join(*p, ",") }

func (p *paramFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var (
		in     = flag.String("in", "", "input image (PNG or JPEG)")
		out    = flag.String("out", "out.png", "output PNG file")
		filter = flag.String("filter", "", "filter id (see -list)")
		preset = flag.String("preset", "", "JSON preset file (overrides -param)")
		scale  = flag.Float64("scale", 1.0, "view scale")
		edge   = flag.String("edge", "clamp", "edge mode: clamp, wrap, mirror, transparent")
		fit    = flag.Uint("fit", 0, "downscale input so its longest side fits N pixels (0 = off)")
		list   = flag.Bool("list", false, "list available filters and exit")
	)
	var params paramFlags
	flag.Var(&params, "param", "filter parameter as key=value (repeatable)")
	flag.Parse()

	if *list {
		listFilters()
		return
	}
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	img, err := loadImage(*in)
	if err != nil {
		log.Fatalf("load %s: %v", *in, err)
	}
	if *fit > 0 {
		img = resize.Thumbnail(*fit, *fit, img, resize.Lanczos3)
	}

	record, err := buildParams(*filter, *preset, params)
	if err != nil {
		log.Fatal(err)
	}

	eng := warp.NewEngine()
	dst, err := eng.Render(warp.NewStaticSource(warp.FromImage(img)), warp.Request{
		FilterID: *filter,
		Params:   record,
		Scale:    *scale,
		Edge:     warp.ParseEdgeMode(*edge),
	})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if err := dst.SavePNG(*out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("wrote %s (%dx%d)", *out, dst.Width(), dst.Height())
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	return img, err
}

// buildParams assembles the parameter record from a preset file and/or
// repeated -param flags. Flags win over preset values.
func buildParams(filterID, presetPath string, flags paramFlags) (warp.Params, error) {
	record := warp.Params{}
	if presetPath != "" {
		data, err := os.ReadFile(presetPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		p, err := warp.DecodePreset(data)
		if err != nil {
			return nil, err
		}
		record, err = p.Apply(filterID)
		if err != nil {
			return nil, err
		}
	}
	for _, kv := range flags {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed -param %q, want key=value", kv)
		}
		record[key] = parseValue(val)
	}
	return record, nil
}

// parseValue keeps the flat record typed the way JSON decoding would:
// numbers as float64, booleans as bool, everything else as string.
func parseValue(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

func listFilters() {
	for _, d := range warp.Descriptors() {
		fmt.Printf("%-12s %s\n", d.ID, d.Name)
		for _, spec := range d.Params {
			switch spec.Type {
			case warp.ParamSelect:
				var opts []string
				for _, o := range spec.Options {
					opts = append(opts, o.Value)
				}
				fmt.Printf("    %-12s select [%s] default=%v\n", spec.Key, strings.Join(opts, "|"), spec.Default)
			case warp.ParamCheckbox:
				fmt.Printf("    %-12s checkbox default=%v\n", spec.Key, spec.Default)
			default:
				fmt.Printf("    %-12s %v..%v step %v default=%v\n", spec.Key, spec.Min, spec.Max, spec.Step, spec.Default)
			}
		}
	}
}
