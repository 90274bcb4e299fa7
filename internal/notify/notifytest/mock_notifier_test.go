package notifytest

import "github.com/akyairhashvil/tock/internal/notify"

var _ notify.Notifier = (*MockNotifier)(nil)
