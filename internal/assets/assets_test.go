package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAvatar_DecodesPNG(t *testing.T) {
	img := Avatar(samplePNG(t, 32, 24))
	require.NotNil(t, img)
	assert.Equal(t, "avatar", img.Name)
	assert.Equal(t, 32, img.Width)
	assert.Equal(t, 24, img.Height)

	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
}

func TestAvatar_ReencodesJPEGToPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	img := Avatar(buf.Bytes())
	require.NotNil(t, img)
	_, err := png.Decode(bytes.NewReader(img.PNG))
	assert.NoError(t, err)
}

func TestAvatar_EmptyBytes(t *testing.T) {
	assert.Nil(t, Avatar(nil))
	assert.Nil(t, Avatar([]byte{}))
}

func TestAvatar_CorruptBytes(t *testing.T) {
	assert.Nil(t, Avatar([]byte("this is not an image at all")))
}

func TestQR_EncodesURL(t *testing.T) {
	img := QR("https://statick.dev/cv", 128)
	require.NotNil(t, img)
	assert.Equal(t, "qr", img.Name)
	assert.Equal(t, 128, img.Width)
	assert.Equal(t, 128, img.Height)

	_, err := png.Decode(bytes.NewReader(img.PNG))
	assert.NoError(t, err)
}

func TestQR_EmptyURL(t *testing.T) {
	assert.Nil(t, QR("", 128))
}

func TestQR_InvalidSize(t *testing.T) {
	assert.Nil(t, QR("https://example.com", 0))
}
