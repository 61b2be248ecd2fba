package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"cookiemonger/pkg/browser"
	"cookiemonger/pkg/cookie"
	"cookiemonger/pkg/logger"
)

var (
	browserName string
	cookieFile  string
	outputFile  string
	profileName string
	verbose     bool
)

var appFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "browser, b",
		Usage:       "browser to read cookies from (chrome, chromium, brave, slack, firefox)",
		Value:       string(browser.Chrome),
		Destination: &browserName,
	},
	cli.StringFlag{
		Name:        "cookie-file, c",
		Usage:       "path to an alternate cookie database",
		Destination: &cookieFile,
	},
	cli.StringFlag{
		Name:        "output-file, o",
		Usage:       "write cookies to this file in netscape cookie-file format instead of printing json",
		Destination: &outputFile,
	},
	cli.StringFlag{
		Name:        "profile, p",
		Usage:       "firefox profile name or glob (default profile from profiles.ini if not set)",
		Destination: &profileName,
	},
	cli.BoolFlag{
		// No "v" shorthand: the built-in version flag already claims it.
		Name:        "verbose",
		Usage:       "log progress to stderr",
		Destination: &verbose,
	},
}

func run(ctx *cli.Context) error {
	rawURL := ctx.Args().First()
	if rawURL == "" {
		return cli.NewExitError("usage: cookiemonger [options] <url>", 2)
	}

	b, err := browser.ParseBrowser(browserName)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	opts := &browser.Options{
		CookieFile: cookieFile,
		Profile:    profileName,
	}
	if verbose {
		opts.Logger = logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	var cookies []cookie.Cookie
	if b == browser.Firefox {
		cookies, err = browser.FirefoxCookies(rawURL, opts)
	} else {
		cookies, err = browser.ChromeCookies(rawURL, b, opts)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if outputFile != "" {
		if err := cookie.SaveNetscapeFile(outputFile, cookies); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}

	out, err := json.MarshalIndent(cookie.NameValueMap(cookies), "", "  ")
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Println(string(out))
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "cookiemonger",
		HelpName:  "cookiemonger",
		Usage:     "copy cookies from Chrome or Firefox and output as json or a netscape cookie file",
		UsageText: "cookiemonger [options] <url>",
		Flags:     appFlags,
		Action:    run,
		Version:   "0.1.0",
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
