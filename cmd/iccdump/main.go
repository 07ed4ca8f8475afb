// iccdump prints the header fields and tag directory of ICC profile
// files given on the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chromapath/icc"
	"github.com/rs/zerolog"
)

var headerOnly = flag.Bool("header-only", false, "validate and print the profile header only")

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if flag.NArg() == 0 {
		log.Fatal().Msg("usage: iccdump [-header-only] profile.icc ...")
	}
	exitCode := 0
	for _, name := range flag.Args() {
		if err := dump(name, *headerOnly); err != nil {
			log.Error().Err(err).Str("file", name).Msg("failed to parse profile")
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func dump(name string, headerOnly bool) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	options := &icc.ParseOptions{}
	if headerOnly {
		options.Mode = icc.ParseHeaderOnly
	}
	profile, err := icc.Parse(data, options)
	if err != nil {
		return err
	}
	printHeader(name, profile.Header)
	if !headerOnly {
		printTags(profile)
	}
	return nil
}

func printHeader(name string, h icc.Header) {
	fmt.Printf("%s:\n", name)
	fmt.Printf("  %-18s %d bytes\n", "size:", h.ProfileSize)
	fmt.Printf("  %-18s %s\n", "version:", h.Version)
	fmt.Printf("  %-18s %s\n", "device class:", h.DeviceClass)
	fmt.Printf("  %-18s %s\n", "color space:", h.DataColorSpace)
	fmt.Printf("  %-18s %s\n", "connection space:", h.ConnectionSpace)
	fmt.Printf("  %-18s %s\n", "created:", h.CreatedAt.Format(time.RFC3339))
	fmt.Printf("  %-18s %s\n", "platform:", h.PrimaryPlatform)
	fmt.Printf("  %-18s %s\n", "rendering intent:", h.RenderingIntent)
	fmt.Printf("  %-18s X=%.4f Y=%.4f Z=%.4f\n", "pcs illuminant:",
		h.PCSIlluminant.X, h.PCSIlluminant.Y, h.PCSIlluminant.Z)
	if !h.PreferredCMM.IsZero() {
		fmt.Printf("  %-18s %s\n", "preferred cmm:", h.PreferredCMM)
	}
	if !h.Manufacturer.IsZero() {
		fmt.Printf("  %-18s %s (%s)\n", "manufacturer:", h.Manufacturer, icc.ManufacturerURL(h.Manufacturer))
	}
	if !h.Model.IsZero() {
		fmt.Printf("  %-18s %s (%s)\n", "model:", h.Model, icc.DeviceModelURL(h.Model))
	}
	if !h.Creator.IsZero() {
		fmt.Printf("  %-18s %s\n", "creator:", h.Creator)
	}
	if !h.ProfileID.IsZero() {
		fmt.Printf("  %-18s %s\n", "profile id:", h.ProfileID)
	}
	fmt.Printf("  %-18s embedded=%t embedded-only=%t\n", "flags:", h.Flags.Embedded(), h.Flags.EmbeddedOnly())
}

func printTags(p *icc.Profile) {
	fmt.Printf("  %d tags:\n", p.TagCount())
	for _, sig := range p.TagSignatures() {
		value, _ := p.Tag(sig)
		switch v := value.(type) {
		case icc.OpaqueTag:
			fmt.Printf("    %-6s type %-6q %d bytes at %d (not decoded)\n", sig, v.Type, v.Size, v.Offset)
		case icc.TextTag:
			fmt.Printf("    %-6s %q\n", sig, v.Text)
		case icc.DescriptionTag:
			fmt.Printf("    %-6s %q\n", sig, v.ASCII)
		case icc.MultiLocalizedTag:
			if len(v.Strings) > 0 {
				fmt.Printf("    %-6s %q (%s-%s)\n", sig, v.Strings[0].Value, v.Strings[0].Language, v.Strings[0].Country)
			}
		case icc.XYZTag:
			for _, xyz := range v.Values {
				fmt.Printf("    %-6s X=%.4f Y=%.4f Z=%.4f\n", sig, xyz.X, xyz.Y, xyz.Z)
			}
		default:
			fmt.Printf("    %-6s %v\n", sig, value)
		}
	}
}
