// Package texture provides TGA decoding and OpenGL texture upload for
// model texture bindings.
package texture

import (
	"fmt"
	"os"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2  // Uncompressed true-color
	tgaTypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes TGA image data into RGBA pixels.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10)
// files at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*Texture, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: data truncated")
	}
	pixelData := data[offset:]
	bytesPerPixel := bpp / 8

	t := &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height*4),
	}

	// Bit 5 of the descriptor means rows are stored top-to-bottom
	topToBottom := descriptor&0x20 != 0

	if imageType == tgaTypeUncompressed {
		if len(pixelData) < width*height*bytesPerPixel {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			t.setPixel(i, pixelData[i*bytesPerPixel:], bytesPerPixel, topToBottom)
		}
		return t, nil
	}

	if err := t.decodeRLE(pixelData, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}
	return t, nil
}

// decodeRLE fills the pixel buffer from RLE-compressed TGA packets.
func (t *Texture) decodeRLE(pixelData []byte, bytesPerPixel int, topToBottom bool) error {
	pixelCount := t.Width * t.Height
	pixelIdx := 0
	dataIdx := 0

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel value repeated count times
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				t.setPixel(pixelIdx, pixelData[dataIdx:], bytesPerPixel, topToBottom)
				pixelIdx++
			}
			dataIdx += bytesPerPixel
		} else {
			// Raw packet: count literal pixels
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+bytesPerPixel > len(pixelData) {
					return nil
				}
				t.setPixel(pixelIdx, pixelData[dataIdx:], bytesPerPixel, topToBottom)
				dataIdx += bytesPerPixel
				pixelIdx++
			}
		}
	}

	return nil
}

// setPixel writes one BGR(A) source pixel into the RGBA buffer, flipping
// the row order for bottom-to-top files.
func (t *Texture) setPixel(idx int, src []byte, bytesPerPixel int, topToBottom bool) {
	x := idx % t.Width
	y := idx / t.Width
	if !topToBottom {
		y = t.Height - 1 - y
	}

	a := uint8(255)
	if bytesPerPixel == 4 {
		a = src[3]
	}

	dst := (y*t.Width + x) * 4
	t.Pixels[dst] = src[2]
	t.Pixels[dst+1] = src[1]
	t.Pixels[dst+2] = src[0]
	t.Pixels[dst+3] = a
}

// LoadTGA reads and decodes a TGA file from disk.
func LoadTGA(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tga: reading %s: %w", path, err)
	}
	t, err := DecodeTGA(data)
	if err != nil {
		return nil, fmt.Errorf("tga: decoding %s: %w", path, err)
	}
	t.Name = path
	return t, nil
}
