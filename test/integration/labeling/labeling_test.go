// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

//go:build integration

package labeling_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/namedloot/namedloot/internal/labeler"
	"github.com/namedloot/namedloot/pkg/label"
)

const ruleSettings = `
version: "1.0.0"
manual_format: "&7{name} x{count}"
rules:
  - condition: Contains
    value: diamond
    format: "&b&l{name} &f({count})"
    enabled: true
  - condition: Contains
    value: ore
    format: "&a{name}"
    enabled: true
  - condition: "Count >"
    value: 32
    enabled: true
  - condition: "Count ="
    value: 1
    format: "&8{name}"
    enabled: false
`

var _ = Describe("Labeling from a settings file", func() {
	var l *labeler.Labeler

	BeforeEach(func() {
		l = labelerFor(writeSettings(ruleSettings))
	})

	DescribeTable("selects the label source",
		func(name string, count int, wantSource labeler.Source, wantText string) {
			res, ok := l.Label(label.Item{Name: name, Count: count})
			Expect(ok).To(BeTrue())
			Expect(res.Source).To(Equal(wantSource))
			Expect(res.Label.Text()).To(Equal(wantText))
		},
		Entry("first group wins", "Diamond Ore", 64, labeler.SourceRule, "Diamond Ore (64)"),
		Entry("chained group", "Coal Ore", 40, labeler.SourceRule, "Coal Ore"),
		Entry("chained condition fails", "Coal Ore", 8, labeler.SourceManual, "Coal Ore x8"),
		Entry("disabled group is skipped", "Stick", 1, labeler.SourceManual, "Stick x1"),
	)

	It("keeps the item's own color unless overridden", func() {
		item := label.Item{Name: "Coal Ore", Count: 40, Rarity: label.RarityEpic}
		res, _ := l.Label(item)
		Expect(res.Label.Runs()[0].Style.Color).To(Equal(label.LightPurple))
	})

	It("styles the fallback from the manual template", func() {
		res, _ := l.Label(label.Item{Name: "Stick", Count: 3})
		runs := res.Label.Runs()
		Expect(runs).NotTo(BeEmpty())
		Expect(runs[0]).To(Equal(label.Run{Text: "Stick", Style: label.Style{Color: label.Gray}}))
	})
})

var _ = Describe("Automatic formatting from a settings file", func() {
	It("applies per-field styles", func() {
		l := labelerFor(writeSettings(`
version: "1.0.0"
manual_formatting: false
automatic_format: "{count} x {name}"
name_style:
  color: aqua
  italic: true
count_style:
  color: "#FFAA00"
  bold: true
`))

		res, ok := l.Label(label.Item{Name: "Arrow", Count: 16})
		Expect(ok).To(BeTrue())
		Expect(res.Source).To(Equal(labeler.SourceAutomatic))
		Expect(res.Label.Runs()).To(Equal([]label.Run{
			{Text: "16", Style: label.Style{Color: label.Gold, Bold: true}},
			{Text: " x "},
			{Text: "Arrow", Style: label.Style{Color: label.Aqua, Italic: true}},
		}))
	})
})

var _ = Describe("Reloading settings", func() {
	It("produces a new labeler without affecting the old one", func() {
		path := writeSettings(ruleSettings)
		before := labelerFor(path)

		reloaded := labelerFor(writeSettings(`
version: "1.0.0"
enabled: false
`))

		_, ok := before.Label(label.Item{Name: "Stick", Count: 1})
		Expect(ok).To(BeTrue())

		_, ok = reloaded.Label(label.Item{Name: "Stick", Count: 1})
		Expect(ok).To(BeFalse())
	})
})
