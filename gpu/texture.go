package gpu

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	xdraw "golang.org/x/image/draw"
)

// DepthFormat is the depth attachment format used by the default
// pipeline configuration and NewDepthTexture.
const DepthFormat = gputypes.TextureFormatDepth32Float

// Texture bundles a GPU texture with its view and sampler, the unit
// the bind group constructors consume. Depth textures carry no
// sampler.
type Texture struct {
	device  hal.Device
	texture hal.Texture
	view    hal.TextureView
	sampler hal.Sampler

	width  uint32
	height uint32
	format gputypes.TextureFormat
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// View returns the hal texture view, e.g. for use as a render
// attachment.
func (t *Texture) View() hal.TextureView { return t.view }

// ViewBinding returns the view as a bind group resource.
func (t *Texture) ViewBinding() gputypes.TextureViewBinding {
	return gputypes.TextureViewBinding{TextureView: t.view.NativeHandle()}
}

// SamplerBinding returns the sampler as a bind group resource.
func (t *Texture) SamplerBinding() gputypes.SamplerBinding {
	return gputypes.SamplerBinding{Sampler: t.sampler.NativeHandle()}
}

// Destroy releases sampler, view and texture. Safe to call multiple
// times.
func (t *Texture) Destroy() {
	if t.sampler != nil {
		t.device.DestroySampler(t.sampler)
		t.sampler = nil
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}

// NewTexture2D creates an RGBA8 texture from an image, uploads the
// pixels, and pairs it with a clamping linear sampler.
func NewTexture2D(device hal.Device, queue hal.Queue, label string, img image.Image) (*Texture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	pixels, width, height := rgbaPixels(img)

	t := &Texture{
		device: device,
		width:  width,
		height: height,
		format: gputypes.TextureFormatRGBA8Unorm,
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", label, err)
	}
	t.texture = tex

	queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: width * 4, RowsPerImage: height},
		&hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("create texture view %q: %w", label, err)
	}
	t.view = view

	sampler, err := newLinearSampler(device, label+"_sampler")
	if err != nil {
		t.Destroy()
		return nil, err
	}
	t.sampler = sampler

	slogger().Debug("texture created", "label", label, "width", width, "height", height)
	return t, nil
}

// NewCubeTexture creates a six-layer RGBA8 cube texture from the face
// images in +x, -x, +y, -y, +z, -z order, uploads all faces in one
// write, and pairs it with a clamping linear sampler.
func NewCubeTexture(device hal.Device, queue hal.Queue, label string, faces [6]image.Image) (*Texture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	pixels, size, err := cubePixels(faces)
	if err != nil {
		return nil, err
	}

	t := &Texture{
		device: device,
		width:  size,
		height: size,
		format: gputypes.TextureFormatRGBA8Unorm,
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: size, Height: size, DepthOrArrayLayers: 6},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create cube texture %q: %w", label, err)
	}
	t.texture = tex

	queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: size * 4, RowsPerImage: size},
		&hal.Extent3D{Width: size, Height: size, DepthOrArrayLayers: 6},
	)

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimensionCube,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("create cube texture view %q: %w", label, err)
	}
	t.view = view

	sampler, err := newLinearSampler(device, label+"_sampler")
	if err != nil {
		t.Destroy()
		return nil, err
	}
	t.sampler = sampler

	slogger().Debug("cube texture created", "label", label, "size", size)
	return t, nil
}

// NewDepthTexture creates a Depth32Float render attachment matching
// the default pipeline depth state. It has a view but no sampler.
func NewDepthTexture(device hal.Device, label string, width, height uint32) (*Texture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}

	t := &Texture{
		device: device,
		width:  width,
		height: height,
		format: DepthFormat,
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, fmt.Errorf("create depth texture %q: %w", label, err)
	}
	t.texture = tex

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        DepthFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("create depth texture view %q: %w", label, err)
	}
	t.view = view

	return t, nil
}

// newLinearSampler creates the clamp-to-edge linear sampler paired
// with every sampled texture.
func newLinearSampler(device hal.Device, label string) (hal.Sampler, error) {
	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        label,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler %q: %w", label, err)
	}
	return sampler, nil
}

// rgbaPixels converts any image to tightly packed RGBA bytes.
func rgbaPixels(img image.Image) (pixels []byte, width, height uint32) {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 {
		converted := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(converted, converted.Bounds(), img, bounds.Min, xdraw.Src)
		rgba = converted
	}
	return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy())
}

// cubePixels converts six face images to one concatenated layer
// buffer, validating that all faces are square and equal-sized.
func cubePixels(faces [6]image.Image) ([]byte, uint32, error) {
	first := faces[0].Bounds()
	if first.Dx() != first.Dy() {
		return nil, 0, ErrCubeFaceSize
	}
	size := uint32(first.Dx())

	data := make([]byte, 0, 6*int(size)*int(size)*4)
	for i, face := range faces {
		b := face.Bounds()
		if b.Dx() != first.Dx() || b.Dy() != first.Dy() {
			return nil, 0, fmt.Errorf("%w: face %d is %dx%d, face 0 is %dx%d",
				ErrCubeFaceSize, i, b.Dx(), b.Dy(), first.Dx(), first.Dy())
		}
		pixels, _, _ := rgbaPixels(face)
		data = append(data, pixels...)
	}
	return data, size, nil
}
