package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

func TestBuildResult_Match(t *testing.T) {
	var gotEntity, gotNotices bool
	Built(42).Match(
		func(int) { gotEntity = true },
		func([]notice.Notice) { gotNotices = true },
	)
	assert.True(t, gotEntity)
	assert.False(t, gotNotices)

	gotEntity, gotNotices = false, false
	Failed[int]([]notice.Notice{notice.NewMissingRequiredFile("agency.txt")}).Match(
		func(int) { gotEntity = true },
		func(ns []notice.Notice) { gotNotices = len(ns) == 1 },
	)
	assert.False(t, gotEntity)
	assert.True(t, gotNotices)
}

func TestFailed_CopiesNotices(t *testing.T) {
	buf := []notice.Notice{notice.NewMissingRequiredFile("agency.txt")}
	res := Failed[int](buf)

	buf[0] = notice.NewMissingRequiredFile("routes.txt")

	assert.Equal(t, "agency.txt", res.Notices()[0].Filename())
	_, ok := res.Entity()
	assert.False(t, ok)
}

func TestFailed_PanicsWithoutNotices(t *testing.T) {
	assert.Panics(t, func() { Failed[int](nil) })
}
