/*
Package rmsd implements the Kabsch algorithm for the optimal rigid
superposition of two paired sets of points, as described in detail here:
http://cnx.org/content/m11608/latest/

Superpose returns the proper rotation (determinant +1), the translation and the
RMSD after the fit. SuperposeRotation performs the same fit without moving
either point set to its centroid, which is useful to check how much of a fit
comes from translation alone.
*/
package rmsd
