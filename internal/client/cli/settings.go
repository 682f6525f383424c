package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/services"
	"github.com/dustin/go-humanize"
)

// now is a test seam for the settings screen.
var now = time.Now

func (a *App) Settings(ctx context.Context) error {
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Server\t%s\n", a.config.ServerURL)
	fmt.Fprintf(tw, "Token storage\t%s\n", a.backend)
	fmt.Fprintf(tw, "Request timeout\t%s\n", a.config.RequestTimeout)

	session := "signed out"
	if st := a.session.Snapshot(); st.Authenticated() {
		session = "signed in"
		if exp, ok := services.TokenExpiry(st.Token); ok {
			session = fmt.Sprintf("signed in, token expires %s (%s)",
				humanize.RelTime(exp, now(), "ago", "from now"), exp.Local().Format(time.RFC1123))
		}
	}
	fmt.Fprintf(tw, "Session\t%s\n", session)
	return tw.Flush()
}
