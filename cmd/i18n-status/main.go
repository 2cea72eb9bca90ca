// Package main prints translation coverage for the message catalogs.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/atrium/internal/platform/config"
	i18ncatalog "github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	"github.com/louisbranch/atrium/internal/tools/i18nstatus"
)

func main() {
	baseLocale := flag.String("base-locale", i18ncatalog.BaseLocale, "base locale used as translation source of truth")
	asJSON := flag.Bool("json", false, "write JSON instead of markdown")
	check := flag.Bool("check", false, "exit non-zero when any locale is missing keys")
	flag.Parse()

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		config.Exitf("load i18n catalogs: %v", err)
	}
	rep, err := i18nstatus.Build(bundle, *baseLocale)
	if err != nil {
		config.Exitf("build report: %v", err)
	}
	write := i18nstatus.WriteMarkdown
	if *asJSON {
		write = i18nstatus.WriteJSON
	}
	if err := write(os.Stdout, rep); err != nil {
		config.Exitf("write report: %v", err)
	}
	if *check && !rep.Complete() {
		config.Exitf("catalogs are missing translations")
	}
}
