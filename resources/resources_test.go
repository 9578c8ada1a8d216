package resources_test

import (
	"testing"

	"github.com/pelhamfield/palview/resources"
	"github.com/pelhamfield/palview/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".palview/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".palview/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".palview/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".palview/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, pth, ".palview")
}
