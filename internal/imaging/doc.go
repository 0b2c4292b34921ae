// Package imaging implements the raster transformations applied to an open
// document: rotate, flip, resize, crop, convolution filters, enhancements and
// pixel mode conversion, plus PNG/JPEG decoding and encoding.
//
// Every transformation is a pure function from an *Image to a new *Image; the
// input is never modified. Pixels are held as non-premultiplied NRGBA so that
// PNG round trips stay exact, and the Mode records how the buffer is
// materialized when written.
package imaging
