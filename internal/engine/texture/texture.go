package texture

import "github.com/go-gl/gl/v4.1-core/gl"

// Texture holds decoded RGBA pixels and, once uploaded, a GL texture name.
// Decoding is context-free; Upload and Bind require a current GL context.
type Texture struct {
	Name   string
	Width  int
	Height int
	Pixels []uint8 // RGBA, row-major

	glID uint32
}

// Upload creates the GL texture object on first call and returns its name.
func (t *Texture) Upload() uint32 {
	if t.glID != 0 {
		return t.glID
	}

	gl.GenTextures(1, &t.glID)
	gl.BindTexture(gl.TEXTURE_2D, t.glID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(t.Width), int32(t.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t.glID
}

// Bind makes the texture current on the given texture unit, uploading it
// first if needed.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.Upload())
}

// Release deletes the GL texture object. The decoded pixels stay valid.
func (t *Texture) Release() {
	if t.glID != 0 {
		gl.DeleteTextures(1, &t.glID)
		t.glID = 0
	}
}
