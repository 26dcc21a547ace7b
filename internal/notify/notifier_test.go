package notify_test

import (
	"testing"
	"time"

	"lapak/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_SuccessReplacesCurrent(t *testing.T) {
	notifier := notify.NewNotifier(time.Minute)

	notifier.Success("Product added successfully")
	current := notifier.Current()
	assert.NotNil(t, current)
	assert.Equal(t, notify.KindSuccess, current.Kind)
	assert.Equal(t, "Product added successfully", current.Message)

	notifier.Error("Out of stock")
	current = notifier.Current()
	assert.NotNil(t, current)
	assert.Equal(t, notify.KindError, current.Kind)
	assert.Equal(t, "Out of stock", current.Message)
}

func TestNotifier_Dismiss(t *testing.T) {
	notifier := notify.NewNotifier(time.Minute)

	notifier.Success("Saved")
	notifier.Dismiss()

	assert.Nil(t, notifier.Current())
}

func TestNotifier_AutoDismiss(t *testing.T) {
	notifier := notify.NewNotifier(20 * time.Millisecond)

	notifier.Success("Saved")
	assert.NotNil(t, notifier.Current())

	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_Subscribe(t *testing.T) {
	notifier := notify.NewNotifier(time.Minute)

	var seen []notify.Notification
	unsubscribe := notifier.Subscribe(func(n notify.Notification) {
		seen = append(seen, n)
	})

	notifier.Success("first")
	notifier.Error("second")
	assert.Len(t, seen, 2)
	assert.Equal(t, notify.KindSuccess, seen[0].Kind)
	assert.Equal(t, "second", seen[1].Message)

	unsubscribe()
	notifier.Success("third")
	assert.Len(t, seen, 2)
}
