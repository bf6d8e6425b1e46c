// Package product contains the Product aggregate. Products enter the
// catalog through an upstream system; this service only attaches and
// detaches opaque image URLs and joins products to order lines by
// reference for display.
package product
