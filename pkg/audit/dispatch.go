package audit

import (
	"time"

	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/internal/utils"
)

// Sender delivers one notification to the recipient identified by
// token. Implemented by pushbullet.Client.
type Sender interface {
	Send(token, title, body string) error
}

// DispatchConfig holds the recipient credentials and delivery flags for
// one run.
type DispatchConfig struct {
	UserToken        string
	AdminToken       string
	AdminCopyMsg     bool // mirror detection messages to the admin
	AdminAllCopyMode bool // notify the admin even when nothing was detected
}

// Dispatch maps the run outcome to deliveries, in precedence order:
//
//  1. any stage error recorded: one admin-only error notice, nothing else
//  2. a detection fired: combined message to the user, plus an admin
//     copy when AdminCopyMsg is set
//  3. nothing detected: placeholder message to the admin when
//     AdminAllCopyMode is set
//  4. otherwise no sends
//
// A transport failure is returned immediately; Dispatch does not retry
// or verify delivery.
func Dispatch(sender Sender, cfg DispatchConfig, composer Composer, res *Result, now time.Time) error {
	title := composer.Title(now)

	if res.ErrorDetected() {
		utils.Log.Errorf("dispatching error notice to admin (%d stage errors)", len(res.Errors))
		return sender.Send(cfg.AdminToken, title, composer.ErrorNotice(res.Errors))
	}

	if res.MessageExists() {
		body := composer.CombinedBody(res.Missing, res.Duplicates)
		utils.Log.Info("dispatching detection notice")
		if err := sender.Send(cfg.UserToken, title, body); err != nil {
			return err
		}
		if cfg.AdminCopyMsg {
			utils.Log.Debug("mirroring detection notice to admin")
			return sender.Send(cfg.AdminToken, title+" | ADMIN COPY", body)
		}
		return nil
	}

	if cfg.AdminAllCopyMode {
		utils.Log.Debug("nothing detected, sending admin all-copy notice")
		return sender.Send(cfg.AdminToken, title+" | ADMIN MESSAGE", NothingToNotify)
	}

	utils.Log.Info("nothing detected, nothing sent")
	return nil
}
