// Package filter holds the pixel kernels used by the filter graph nodes.
//
// Every function here works on premultiplied *image.RGBA buffers whose
// Rect may start anywhere in device space. Pixels outside a source
// buffer read as transparent black.
package filter
