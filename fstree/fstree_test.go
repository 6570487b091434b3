package fstree

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustDir(t *testing.T, parent *Dir, name string) *Dir {
	t.Helper()
	require.NoError(t, CreateDir(parent, name))
	dir, ok := parent.Child(name).(*Dir)
	require.True(t, ok)

	return dir
}

func mustFile(t *testing.T, parent *Dir, name string, size int64) {
	t.Helper()
	require.NoError(t, CreateFile(parent, name, size))
}

// exampleFS builds the tree described by the canonical example transcript.
func exampleFS(t *testing.T) *FileSystem {
	fs := New()
	root := fs.Root()
	a := mustDir(t, root, "a")
	mustFile(t, root, "b.txt", 14848514)
	mustFile(t, root, "c.dat", 8504156)
	d := mustDir(t, root, "d")
	e := mustDir(t, a, "e")
	mustFile(t, a, "f", 29116)
	mustFile(t, a, "g", 2557)
	mustFile(t, a, "h.lst", 62596)
	mustFile(t, e, "i", 584)
	mustFile(t, d, "j", 4060174)
	mustFile(t, d, "d.log", 8033020)
	mustFile(t, d, "d.ext", 5626152)
	mustFile(t, d, "k", 7214296)

	return fs
}

func TestCreate(t *testing.T) {
	fs := New()
	root := fs.Root()

	require.NoError(t, CreateDir(root, "a"))
	require.NoError(t, CreateFile(root, "b", 10))
	require.Len(t, root.Children(), 2)

	tCases := []struct {
		name   string
		create func() error
		err    error
	}{
		{"dir named like dir", func() error { return CreateDir(root, "a") }, ErrAlreadyExists},
		{"file named like dir", func() error { return CreateFile(root, "a", 1) }, ErrAlreadyExists},
		{"dir named like file", func() error { return CreateDir(root, "b") }, ErrAlreadyExists},
		{"file named like file", func() error { return CreateFile(root, "b", 99) }, ErrAlreadyExists},
		{"file below file", func() error { return CreateFile(root.Child("b"), "c", 1) }, ErrInvalidTarget},
		{"dir below file", func() error { return CreateDir(root.Child("b"), "c") }, ErrInvalidTarget},
		{"negative size", func() error { return CreateFile(root, "neg", -1) }, ErrNegativeSize},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.ErrorIs(t, tCase.create(), tCase.err)
		})
	}

	// Nothing of the above may have touched the tree.
	require.Len(t, root.Children(), 2)
	require.Equal(t, int64(10), root.Size())
	require.Equal(t, int64(10), root.Child("b").Size())
}

func TestCreateIsIdempotent(t *testing.T) {
	once := New()
	require.NoError(t, CreateDir(once.Root(), "x"))
	require.NoError(t, CreateFile(once.Root(), "y", 42))

	twice := New()
	for i := 0; i < 2; i++ {
		_ = CreateDir(twice.Root(), "x")
		_ = CreateFile(twice.Root(), "y", 42)
	}

	require.Empty(t, cmp.Diff(once, twice, cmp.AllowUnexported(FileSystem{}, Dir{}, File{})))
}

func TestSize(t *testing.T) {
	fs := exampleFS(t)

	err := fs.Root().Walk(func(node Node) error {
		dir, ok := node.(*Dir)
		if !ok {
			return nil
		}
		var sum int64
		for _, child := range dir.Children() {
			sum += child.Size()
		}
		require.Equal(t, sum, dir.Size(), dir.Name())

		return nil
	})
	require.NoError(t, err)

	// Sizes are never cached.
	before := fs.Root().Size()
	mustFile(t, fs.Root().Child("a").(*Dir), "late", 1000)
	require.Equal(t, before+1000, fs.Root().Size())
}

func TestSizeIsCapped(t *testing.T) {
	fs := New()
	big := mustDir(t, fs.Root(), "big")
	mustFile(t, big, "x", math.MaxInt64)
	mustFile(t, big, "y", math.MaxInt64)
	mustFile(t, fs.Root(), "z", 1)

	require.Equal(t, int64(math.MaxInt64), big.Size())
	require.Equal(t, int64(math.MaxInt64), fs.Root().Size())
	require.Equal(t, fs.Root().Size(), fs.MaxDirectorySize())
}

func TestChildrenIsACopy(t *testing.T) {
	fs := exampleFS(t)
	root := fs.Root()

	children := root.Children()
	children[0], children[1] = children[1], children[0]
	children = append(children, &File{name: "a", size: 1})

	require.Len(t, root.Children(), len(children)-1)
	require.Equal(t, "a", root.Children()[0].Name())
	require.Equal(t, "b.txt", root.Children()[1].Name())
	require.Equal(t, int64(48381165), root.Size())
}

func TestCursor(t *testing.T) {
	fs := exampleFS(t)
	c := &Cursor{}

	dir, err := c.Resolve(fs.Root())
	require.NoError(t, err)
	require.Same(t, fs.Root(), dir)
	require.Equal(t, "/", c.Path())

	c.Pop()
	require.Empty(t, c.Segments())

	c.Push("a")
	c.Push("e")
	require.Equal(t, "/a/e", c.Path())
	require.Equal(t, []string{"a", "e"}, c.Segments())
	dir, err = c.Resolve(fs.Root())
	require.NoError(t, err)
	require.Equal(t, "e", dir.Name())

	c.Pop()
	dir, err = c.Resolve(fs.Root())
	require.NoError(t, err)
	require.Equal(t, "a", dir.Name())

	c.Push("f")
	_, err = c.Resolve(fs.Root())
	require.ErrorIs(t, err, ErrNotFound, "f is a file")

	c.Reset()
	c.Push("missing")
	_, err = c.Resolve(fs.Root())
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "/missing")

	c.Reset()
	require.Equal(t, "/", c.Path())
}

func TestDirectories(t *testing.T) {
	fs := exampleFS(t)

	expected := []DirSize{
		{Name: "/", Path: "/", Size: 48381165},
		{Name: "a", Path: "/a", Size: 94853},
		{Name: "e", Path: "/a/e", Size: 584},
		{Name: "d", Path: "/d", Size: 24933642},
	}
	if diff := cmp.Diff(expected, fs.Directories()); diff != "" {
		t.Fatalf("unexpected directories: %s", diff)
	}
}

func TestQueries(t *testing.T) {
	t.Run("example", func(t *testing.T) {
		fs := exampleFS(t)

		require.Equal(t, int64(95437), fs.TotalSizeAtMost(100000))
		require.Equal(t, int64(48381165), fs.MaxDirectorySize())
		require.Equal(t, fs.Root().Size(), fs.MaxDirectorySize())
		require.Equal(t, int64(8381165), fs.SpaceToFree(70000000, 30000000))
		require.Equal(t, int64(24933642), fs.DeletionCandidate(70000000, 30000000))
		require.Equal(t, []DirSize{
			{Name: "d", Path: "/d", Size: 24933642},
			{Name: "/", Path: "/", Size: 48381165},
		}, fs.DeletionCandidates(8381165))
	})

	t.Run("empty subdirectory", func(t *testing.T) {
		fs := New()
		mustDir(t, fs.Root(), "empty")

		require.Equal(t, int64(0), fs.TotalSizeAtMost(100000))
		require.Equal(t, int64(0), fs.MaxDirectorySize())
	})

	t.Run("root is the fallback", func(t *testing.T) {
		fs := exampleFS(t)

		require.Equal(t, fs.MaxDirectorySize(), fs.SmallestDirectoryAtLeast(fs.MaxDirectorySize()+1))
		require.Equal(t, int64(584), fs.SmallestDirectoryAtLeast(0))
	})

	t.Run("same names at different places", func(t *testing.T) {
		fs := New()
		x := mustDir(t, fs.Root(), "x")
		y := mustDir(t, fs.Root(), "y")
		mustFile(t, mustDir(t, x, "tmp"), "one", 1)
		mustFile(t, mustDir(t, y, "tmp"), "two", 2)

		require.Equal(t, []DirSize{
			{Name: "x", Path: "/x", Size: 1},
			{Name: "tmp", Path: "/x/tmp", Size: 1},
			{Name: "y", Path: "/y", Size: 2},
			{Name: "tmp", Path: "/y/tmp", Size: 2},
			{Name: "/", Path: "/", Size: 3},
		}, fs.DeletionCandidates(0))
		require.Equal(t, int64(1+1+2+2+3), fs.TotalSizeAtMost(100))
	})
}
