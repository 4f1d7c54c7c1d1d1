// Package web renders the HTML pages shown in the seller's browser during
// the OAuth consent round trip.
package web

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

const styles = `body{font-family:system-ui,sans-serif;max-width:36rem;margin:4rem auto;padding:0 1rem;color:#1f2328}` +
	`h1{font-size:1.4rem}.ok{color:#1a7f37}.err{color:#cf222e}code{background:#f6f8fa;padding:.1rem .3rem}`

// page wraps body in the shared document shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(title), styles,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// AuthSuccess confirms that the seller account is connected.
func AuthSuccess(expiresAt time.Time) templ.Component {
	return page("quicklist connected", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1 class="ok">eBay account connected</h1>`+
				`<p>The access token is valid until <code>%s</code> and is refreshed automatically.</p>`+
				`<p>You can close this tab and return to the extension.</p>`,
			templ.EscapeString(expiresAt.UTC().Format(time.RFC1123)),
		)
		return err
	}))
}

// AuthFailure explains why the consent round trip did not produce a credential.
func AuthFailure(reason string) templ.Component {
	return page("quicklist authorization failed", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1 class="err">Authorization failed</h1><p>%s</p><p><a href="/auth">Try again</a></p>`,
			templ.EscapeString(reason),
		)
		return err
	}))
}
