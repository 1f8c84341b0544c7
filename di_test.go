package srcfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/0xalexb/srcfg"
	"github.com/0xalexb/srcfg/logging"
	"github.com/0xalexb/srcfg/tree"
)

func TestNewModule(t *testing.T) {
	t.Parallel()

	var loaded *tree.File

	app := fxtest.New(t,
		srcfg.NewModule("jobs", "testdata/twice/a.srcfg", srcfg.WithEnviron(map[string]string{})),
		fx.Invoke(fx.Annotate(func(file *tree.File) {
			loaded = file
		}, fx.ParamTags(`name:"jobs"`))),
	)

	app.RequireStart()
	app.RequireStop()

	require.NotNil(t, loaded)

	jobs, err := loaded.GetSectionList("jobs")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestNewModule_UsesContainerLogger(t *testing.T) {
	t.Parallel()

	var loaded *tree.File

	app := fxtest.New(t,
		fx.Supply(logging.Discard()),
		srcfg.NewModule("sample", "testdata/sample/base.srcfg"),
		fx.Invoke(fx.Annotate(func(file *tree.File) {
			loaded = file
		}, fx.ParamTags(`name:"sample"`))),
	)

	app.RequireStart()
	app.RequireStop()

	require.NotNil(t, loaded)
	assert.True(t, loaded.HasSection("new section"))
}

func TestNewModule_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		module   string
		path     string
		contains string
	}{
		{name: "empty name", path: "testdata/twice/a.srcfg", contains: srcfg.ErrEmptyName.Error()},
		{name: "empty path", module: "cfg", contains: srcfg.ErrEmptyPath.Error()},
		{name: "parse errors", module: "cfg", path: "testdata/broken/main.srcfg", contains: "got errors when importing file"},
		{name: "missing file", module: "cfg", path: "testdata/nope.srcfg", contains: "file not found"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			app := fx.New(
				fx.NopLogger,
				srcfg.NewModule(testCase.module, testCase.path, srcfg.WithEnviron(map[string]string{})),
				fx.Invoke(fx.Annotate(func(*tree.File) {}, fx.ParamTags(`name:"cfg"`))),
			)

			require.Error(t, app.Err())
			assert.Contains(t, app.Err().Error(), testCase.contains)
		})
	}
}
