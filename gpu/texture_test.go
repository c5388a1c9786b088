package gpu

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewTexture2D(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tex, err := NewTexture2D(device, queue, "albedo", testImage(8))
	if err != nil {
		t.Fatalf("NewTexture2D failed: %v", err)
	}
	defer tex.Destroy()

	if tex.Width() != 8 || tex.Height() != 8 {
		t.Errorf("size = %dx%d, want 8x8", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", tex.Format())
	}
	if tex.View() == nil {
		t.Error("View() = nil, want texture view")
	}
}

func TestNewTexture2DConvertsNonRGBA(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	// Grayscale input goes through the x/image conversion path.
	img := image.NewGray(image.Rect(0, 0, 3, 5))
	tex, err := NewTexture2D(device, queue, "gray", img)
	if err != nil {
		t.Fatalf("NewTexture2D(gray) failed: %v", err)
	}
	defer tex.Destroy()

	if tex.Width() != 3 || tex.Height() != 5 {
		t.Errorf("size = %dx%d, want 3x5", tex.Width(), tex.Height())
	}
}

func TestNewTexture2DNilDeviceOrQueue(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := NewTexture2D(nil, nil, "x", testImage(2)); !errors.Is(err, ErrNilDevice) {
		t.Errorf("err = %v, want ErrNilDevice", err)
	}
	if _, err := NewTexture2D(device, nil, "x", testImage(2)); !errors.Is(err, ErrNilQueue) {
		t.Errorf("err = %v, want ErrNilQueue", err)
	}
}

func TestNewCubeTexture(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	var faces [6]image.Image
	for i := range faces {
		faces[i] = testImage(16)
	}
	tex, err := NewCubeTexture(device, queue, "sky", faces)
	if err != nil {
		t.Fatalf("NewCubeTexture failed: %v", err)
	}
	defer tex.Destroy()

	if tex.Width() != 16 || tex.Height() != 16 {
		t.Errorf("face size = %dx%d, want 16x16", tex.Width(), tex.Height())
	}
}

func TestNewCubeTextureFaceSizeMismatch(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	var faces [6]image.Image
	for i := range faces {
		faces[i] = testImage(16)
	}
	faces[3] = testImage(8)

	if _, err := NewCubeTexture(device, queue, "sky", faces); !errors.Is(err, ErrCubeFaceSize) {
		t.Errorf("err = %v, want ErrCubeFaceSize", err)
	}
}

func TestNewCubeTextureNonSquare(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	var faces [6]image.Image
	for i := range faces {
		faces[i] = image.NewRGBA(image.Rect(0, 0, 8, 4))
	}
	if _, err := NewCubeTexture(device, queue, "sky", faces); !errors.Is(err, ErrCubeFaceSize) {
		t.Errorf("err = %v, want ErrCubeFaceSize", err)
	}
}

func TestNewDepthTexture(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tex, err := NewDepthTexture(device, "depth", 640, 480)
	if err != nil {
		t.Fatalf("NewDepthTexture failed: %v", err)
	}
	defer tex.Destroy()

	if tex.Format() != DepthFormat {
		t.Errorf("Format = %v, want %v", tex.Format(), DepthFormat)
	}
	if tex.View() == nil {
		t.Error("View() = nil, want depth attachment view")
	}
	if tex.sampler != nil {
		t.Error("depth texture must not carry a sampler")
	}
}

func TestTextureDestroyIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tex, err := NewTexture2D(device, queue, "x", testImage(2))
	if err != nil {
		t.Fatalf("NewTexture2D failed: %v", err)
	}
	tex.Destroy()
	tex.Destroy()
}

func TestRGBAPixelsTightPacking(t *testing.T) {
	pixels, w, h := rgbaPixels(testImage(4))
	if w != 4 || h != 4 {
		t.Fatalf("size = %dx%d, want 4x4", w, h)
	}
	if len(pixels) != 4*4*4 {
		t.Errorf("len = %d, want %d", len(pixels), 4*4*4)
	}
}
